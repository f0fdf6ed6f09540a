// internal/core/domain/summary.go
package domain

// SummaryRow is the per-commodity aggregate over all movements. Only
// commodities with at least one movement produce a row; every sum
// coalesces to zero rather than null on an empty partition.
type SummaryRow struct {
	CommodityID       int64  `json:"commodity_id"`
	CommodityName     string `json:"commodity_name"`
	TotalQuantity     int64  `json:"total_quantity"`
	ShippingQuantity  int64  `json:"shipping_quantity"`
	ReceivingQuantity int64  `json:"receiving_quantity"`
}

// GluttedCommodity is a commodity whose total quantity meets or exceeds a
// caller-supplied threshold.
type GluttedCommodity struct {
	CommodityID   int64  `json:"commodity_id"`
	CommodityName string `json:"commodity_name"`
	TotalQuantity int64  `json:"total_quantity"`
}
