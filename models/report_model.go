package models

// --- Aggregation building blocks ---

// TimeBucket holds aggregated sales for one calendar day or hour.
type TimeBucket struct {
	Key     string  `json:"key"`
	Orders  int     `json:"orders"`
	Items   int     `json:"items"`
	Revenue float64 `json:"revenue"`
}

// DimensionBucket holds aggregated sales for one product, category or customer.
type DimensionBucket struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Orders   int     `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// PaymentBucket holds aggregated sales for one payment method.
type PaymentBucket struct {
	Method  string  `json:"method"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// RankedEntry is one row of a top-N breakdown. Percentage is the share of the
// whole untruncated population, so top-N percentages do not sum to 100.
type RankedEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// Trend classifications.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// TrendResult compares the second half of a window against the first.
type TrendResult struct {
	Growth         float64 `json:"growth"`
	Classification string  `json:"classification"`
}

// --- Inventory classification ---

const (
	StockStatusCritical    = "critical"
	StockStatusLow         = "low"
	StockStatusNormal      = "normal"
	StockStatusHigh        = "high"
	StockStatusOverstocked = "overstocked"
)

const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
)

// StockLevel is one classified inventory row for the stock-level report.
type StockLevel struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	SKU         *string `json:"sku,omitempty"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	MinLevel    int     `json:"min_level"`
	MaxLevel    int     `json:"max_level"`
	Status      string  `json:"status"`
	Utilization float64 `json:"utilization"`
	StockValue  float64 `json:"stock_value"`
}

// LowStockItem is one row of the low-stock report with urgency and reorder advice.
type LowStockItem struct {
	ProductID         string  `json:"product_id"`
	Name              string  `json:"name"`
	SKU               *string `json:"sku,omitempty"`
	Category          string  `json:"category"`
	Quantity          int     `json:"quantity"`
	MinLevel          int     `json:"min_level"`
	DaysUntilStockout int     `json:"days_until_stockout"`
	Urgency           string  `json:"urgency"`
	ReorderQuantity   int     `json:"reorder_quantity"`
	StockValue        float64 `json:"stock_value"`
}

// --- Stock movement ---

// Movement kinds. Observed movements are derived from real sale records;
// estimated movements stand in for a purchase-order ledger that does not exist.
const (
	MovementObserved  = "observed"
	MovementEstimated = "estimated"
)

const (
	MovementIn  = "in"
	MovementOut = "out"
)

// StockMovement is one aggregated in/out movement for a day.
type StockMovement struct {
	Date      string `json:"date"`
	Direction string `json:"direction"`
	Kind      string `json:"kind"`
	Quantity  int    `json:"quantity"`
}

// --- Report shapes ---

// DailySummaryReport is the daily sales snapshot with comparisons.
type DailySummaryReport struct {
	Date                string        `json:"date"`
	Summary             DailySummary  `json:"summary"`
	SalesByHour         []TimeBucket  `json:"sales_by_hour"`
	TopProducts         []RankedEntry `json:"top_products"`
	TopCustomers        []RankedEntry `json:"top_customers"`
	ComparisonYesterday float64       `json:"comparison_vs_yesterday"`
	ComparisonLastWeek  float64       `json:"comparison_vs_last_week"`
}

type DailySummary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalItems        int     `json:"total_items"`
}

// SalesReport is the period sales report.
type SalesReport struct {
	Period            string          `json:"period"`
	TotalSales        float64         `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue float64         `json:"average_order_value"`
	TopProducts       []RankedEntry   `json:"top_products"`
	TopCustomers      []RankedEntry   `json:"top_customers"`
	SalesByDay        []TimeBucket    `json:"sales_by_day"`
	PaymentBreakdown  []PaymentBucket `json:"payment_method_breakdown"`
	Trend             TrendResult     `json:"trend"`
}

// TopProductsReport ranks products by revenue for a period.
type TopProductsReport struct {
	Period       string        `json:"period"`
	TotalRevenue float64       `json:"total_revenue"`
	TopProducts  []RankedEntry `json:"top_products"`
}

// CustomerSalesReport breaks period sales down by customer.
type CustomerSalesReport struct {
	Period               string           `json:"period"`
	TotalCustomers       int              `json:"total_customers"`
	TotalRevenue         float64          `json:"total_revenue"`
	CustomerSales        []RankedEntry    `json:"customer_sales"`
	Segments             CustomerSegments `json:"segments"`
	AverageCustomerValue float64          `json:"average_customer_value"`
}

type CustomerSegments struct {
	VIP        int `json:"vip"`
	Regular    int `json:"regular"`
	Occasional int `json:"occasional"`
}

// StockLevelReport classifies the whole catalog's stock positions.
type StockLevelReport struct {
	Summary         StockLevelSummary `json:"summary"`
	StockLevels     []StockLevel      `json:"stock_levels"`
	Recommendations []string          `json:"recommendations"`
}

type StockLevelSummary struct {
	TotalProducts      int     `json:"total_products"`
	LowStockCount      int     `json:"low_stock_count"`
	OverstockedCount   int     `json:"overstocked_count"`
	TotalValue         float64 `json:"total_value"`
	AverageUtilization float64 `json:"average_utilization"`
}

// LowStockReport lists items at or below their minimum threshold.
type LowStockReport struct {
	Summary         LowStockSummary `json:"summary"`
	LowStockItems   []LowStockItem  `json:"low_stock_items"`
	Recommendations []string        `json:"recommendations"`
}

type LowStockSummary struct {
	TotalLowStockItems int     `json:"total_low_stock_items"`
	CriticalItems      int     `json:"critical_items"`
	HighPriorityItems  int     `json:"high_priority_items"`
	TotalValue         float64 `json:"total_value"`
}

// ValuationReport values the inventory at cost and at retail, per category.
type ValuationReport struct {
	Summary         ValuationSummary    `json:"summary"`
	Categories      []CategoryValuation `json:"categories"`
	Recommendations []string            `json:"recommendations"`
}

type ValuationSummary struct {
	TotalProducts int     `json:"total_products"`
	TotalCost     float64 `json:"total_cost"`
	TotalRetail   float64 `json:"total_retail"`
	TotalProfit   float64 `json:"total_profit"`
	AverageMargin float64 `json:"average_margin"`
}

type CategoryValuation struct {
	Category    string  `json:"category"`
	Products    int     `json:"products"`
	TotalCost   float64 `json:"total_cost"`
	TotalRetail float64 `json:"total_retail"`
	Margin      float64 `json:"margin"`
}

// MovementReport aggregates stock in/out movements for a period.
type MovementReport struct {
	Summary         MovementSummary `json:"summary"`
	Movements       []StockMovement `json:"movements"`
	Recommendations []string        `json:"recommendations"`
}

type MovementSummary struct {
	TotalMovements int `json:"total_movements"`
	StockIn        int `json:"stock_in"`
	StockOut       int `json:"stock_out"`
	NetMovement    int `json:"net_movement"`
}

// --- Dashboard ---

const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
	AlertMedium   = "medium"
	AlertInfo     = "info"
)

// Alert is one flat dashboard advisory.
type Alert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Dashboard merges the five constituent reports plus derived alerts.
type Dashboard struct {
	DailySales   DailySummaryReport `json:"daily_sales"`
	StockLevels  StockLevelReport   `json:"stock_levels"`
	LowStock     LowStockReport     `json:"low_stock"`
	TopProducts  TopProductsReport  `json:"top_products"`
	TopCustomers []RankedEntry      `json:"top_customers"`
	Alerts       []Alert            `json:"alerts"`
}

// BusinessSummary is the period-scoped roll-up across sales and inventory.
type BusinessSummary struct {
	Period          string               `json:"period"`
	Sales           BusinessSalesSummary `json:"sales"`
	Inventory       BusinessStockSummary `json:"inventory"`
	TopCategories   []RankedEntry        `json:"top_categories"`
	Recommendations []string             `json:"recommendations"`
}

type BusinessSalesSummary struct {
	TotalSales        float64     `json:"total_sales"`
	TotalOrders       int         `json:"total_orders"`
	AverageOrderValue float64     `json:"average_order_value"`
	Trend             TrendResult `json:"trend"`
}

type BusinessStockSummary struct {
	TotalProducts int     `json:"total_products"`
	LowStockCount int     `json:"low_stock_count"`
	TotalValue    float64 `json:"total_value"`
}

// ReportInsight is the AI-generated narrative over a business summary.
type ReportInsight struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Concerns   []string `json:"concerns"`
}
