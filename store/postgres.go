package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/models"
)

// Postgres implements Store against the shop database using pgx.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres wraps a connection pool.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// saleWhere builds the shared WHERE clause for completed sales in the filter
// window. The returned clause references s (sales) and si (sale_items).
func saleWhere(f SalesFilter, withItems bool) (string, []interface{}) {
	clause := "s.status = 'completed'"
	args := []interface{}{}
	n := 0
	add := func(cond string, val interface{}) {
		n++
		clause += fmt.Sprintf(" AND "+cond, n)
		args = append(args, val)
	}
	if !f.Start.IsZero() {
		add("s.sale_date >= $%d", f.Start)
	}
	if !f.End.IsZero() {
		add("s.sale_date <= $%d", f.End)
	}
	if f.CustomerID != "" {
		add("s.customer_id = $%d", f.CustomerID)
	}
	if withItems {
		if f.Category != "" {
			add("si.category = $%d", f.Category)
		}
		if f.ProductID != "" {
			add("si.inventory_item_id = $%d", f.ProductID)
		}
	}
	return clause, args
}

// lineFiltered reports whether the filter restricts individual line items,
// which forces revenue to be summed from sale_items instead of sales.
func lineFiltered(f SalesFilter) bool {
	return f.Category != "" || f.ProductID != ""
}

func (p *Postgres) SalesSummary(ctx context.Context, f SalesFilter) (SalesSummary, error) {
	var out SalesSummary
	where, args := saleWhere(f, true)
	query := `
		SELECT COUNT(DISTINCT s.id),
		       COALESCE(SUM(si.quantity_sold), 0),
		       COALESCE(SUM(si.subtotal), 0)
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		WHERE ` + where
	if !lineFiltered(f) {
		// No line filter: take the sale totals (which include tax and
		// sale-level discounts) rather than re-deriving from line items.
		query = `
		SELECT COUNT(s.id),
		       COALESCE((SELECT SUM(si.quantity_sold)
		                 FROM sales s JOIN sale_items si ON si.sale_id = s.id
		                 WHERE ` + where + `), 0),
		       COALESCE(SUM(s.total_amount), 0)
		FROM sales s
		WHERE ` + where
	}
	if err := p.db.QueryRow(ctx, query, args...).Scan(&out.Orders, &out.Items, &out.Revenue); err != nil {
		return SalesSummary{}, err
	}
	return out, nil
}

func (p *Postgres) salesByTimeKey(ctx context.Context, f SalesFilter, keyExpr string) ([]models.TimeBucket, error) {
	where, args := saleWhere(f, true)
	revenue := "SUM(s.total_amount)"
	if lineFiltered(f) {
		revenue = "SUM(si.subtotal)"
	}
	query := fmt.Sprintf(`
		SELECT %s AS bucket,
		       COUNT(DISTINCT s.id),
		       COALESCE(SUM(si.quantity_sold), 0),
		       COALESCE(%s, 0)
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		WHERE %s
		GROUP BY bucket
		ORDER BY bucket ASC
	`, keyExpr, revenue, where)
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]models.TimeBucket, 0)
	for rows.Next() {
		var b models.TimeBucket
		if err := rows.Scan(&b.Key, &b.Orders, &b.Items, &b.Revenue); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (p *Postgres) SalesByDay(ctx context.Context, f SalesFilter) ([]models.TimeBucket, error) {
	return p.salesByTimeKey(ctx, f, "TO_CHAR(s.sale_date, 'YYYY-MM-DD')")
}

func (p *Postgres) SalesByHour(ctx context.Context, f SalesFilter) ([]models.TimeBucket, error) {
	return p.salesByTimeKey(ctx, f, "TO_CHAR(s.sale_date, 'HH24')")
}

func (p *Postgres) salesByDim(ctx context.Context, f SalesFilter, idExpr, nameExpr string) ([]models.DimensionBucket, error) {
	where, args := saleWhere(f, true)
	query := fmt.Sprintf(`
		SELECT %s AS dim_id,
		       %s AS dim_name,
		       COALESCE(SUM(si.quantity_sold), 0),
		       COUNT(DISTINCT s.id),
		       COALESCE(SUM(si.subtotal), 0) AS revenue
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		WHERE %s
		GROUP BY dim_id, dim_name
		ORDER BY revenue DESC
	`, idExpr, nameExpr, where)
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]models.DimensionBucket, 0)
	for rows.Next() {
		var b models.DimensionBucket
		if err := rows.Scan(&b.ID, &b.Name, &b.Quantity, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (p *Postgres) SalesByProduct(ctx context.Context, f SalesFilter) ([]models.DimensionBucket, error) {
	return p.salesByDim(ctx, f, "si.inventory_item_id", "si.item_name")
}

func (p *Postgres) SalesByCategory(ctx context.Context, f SalesFilter) ([]models.DimensionBucket, error) {
	return p.salesByDim(ctx, f, "si.category", "si.category")
}

func (p *Postgres) SalesByCustomer(ctx context.Context, f SalesFilter) ([]models.DimensionBucket, error) {
	where, args := saleWhere(f, true)
	query := `
		SELECT s.customer_id,
		       COALESCE(c.name, s.customer_id),
		       COALESCE(SUM(si.quantity_sold), 0),
		       COUNT(DISTINCT s.id),
		       COALESCE(SUM(si.subtotal), 0) AS revenue
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		LEFT JOIN shop_customers c ON c.id = s.customer_id
		WHERE s.customer_id IS NOT NULL AND ` + where + `
		GROUP BY s.customer_id, c.name
		ORDER BY revenue DESC
	`
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]models.DimensionBucket, 0)
	for rows.Next() {
		var b models.DimensionBucket
		if err := rows.Scan(&b.ID, &b.Name, &b.Quantity, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (p *Postgres) SalesByPayment(ctx context.Context, f SalesFilter) ([]models.PaymentBucket, error) {
	where, args := saleWhere(f, false)
	query := `
		SELECT s.payment_type,
		       COUNT(s.id),
		       COALESCE(SUM(s.total_amount), 0) AS revenue
		FROM sales s
		WHERE ` + where + `
		GROUP BY s.payment_type
		ORDER BY revenue DESC
	`
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]models.PaymentBucket, 0)
	for rows.Next() {
		var b models.PaymentBucket
		if err := rows.Scan(&b.Method, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (p *Postgres) StockItems(ctx context.Context, category string) ([]models.StockItem, error) {
	query := `
		SELECT ii.id, ii.name, ii.sku, COALESCE(ii.category, ''),
		       ss.quantity, COALESCE(ii.low_stock_threshold, 0), ii.max_stock_threshold,
		       COALESCE(ii.original_price, 0), ii.selling_price
		FROM shop_stock ss
		JOIN inventory_items ii ON ss.inventory_item_id = ii.id
		WHERE ii.is_archived = false
	`
	args := []interface{}{}
	if category != "" {
		query += " AND ii.category = $1"
		args = append(args, category)
	}
	query += " ORDER BY ii.name ASC"

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.StockItem, 0)
	for rows.Next() {
		var it models.StockItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.SKU, &it.Category,
			&it.Quantity, &it.MinThreshold, &it.MaxThreshold,
			&it.UnitCost, &it.SellingPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *Postgres) DailyUnitsSold(ctx context.Context, f SalesFilter) (map[string]float64, error) {
	days := 1.0
	if !f.Start.IsZero() && !f.End.IsZero() {
		if d := f.End.Sub(f.Start).Hours() / 24; d >= 1 {
			days = d
		}
	}
	where, args := saleWhere(f, true)
	query := `
		SELECT si.inventory_item_id, COALESCE(SUM(si.quantity_sold), 0)
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		WHERE ` + where + `
		GROUP BY si.inventory_item_id
	`
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make(map[string]float64)
	for rows.Next() {
		var id string
		var sold float64
		if err := rows.Scan(&id, &sold); err != nil {
			return nil, err
		}
		units[id] = sold / days
	}
	return units, rows.Err()
}
