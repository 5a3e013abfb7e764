package catalog

const (
	GroupDashboard = "dashboard"
	GroupInsight   = "insight"
)

// Query is a fixed, parameterless read statement.
type Query struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Group string `json:"group"`
	SQL   string `json:"sql"`
}

var registry = []Query{
	{
		ID:    "total_customers",
		Title: "Total number of customers",
		Group: GroupDashboard,
		SQL:   `SELECT COUNT(*) AS total_customers FROM customers`,
	},
	{
		ID:    "top5_customers_by_orders",
		Title: "Top 5 customers by total orders",
		Group: GroupDashboard,
		SQL:   `SELECT * FROM customers ORDER BY total_orders DESC, customer_id LIMIT 5`,
	},
	{
		ID:    "avg_order_value",
		Title: "Average order value",
		Group: GroupDashboard,
		SQL:   `SELECT AVG(total_amount) AS avg_order_value FROM orders`,
	},
	{
		ID:    "orders_per_restaurant",
		Title: "Total orders per restaurant",
		Group: GroupDashboard,
		SQL: `SELECT restaurant_id, COUNT(*) AS total_orders
FROM orders
GROUP BY restaurant_id
ORDER BY restaurant_id`,
	},
	{
		ID:    "revenue_per_restaurant",
		Title: "Total revenue per restaurant",
		Group: GroupDashboard,
		SQL: `SELECT restaurant_id, SUM(total_amount) AS total_revenue
FROM orders
GROUP BY restaurant_id
ORDER BY restaurant_id`,
	},
	{
		ID:    "monthly_orders_last_year",
		Title: "Orders per month over the last year",
		Group: GroupDashboard,
		SQL: `SELECT to_char(order_date, 'YYYY-MM') AS month, COUNT(*) AS total_orders
FROM orders
WHERE order_date >= CURRENT_DATE - INTERVAL '1 year'
GROUP BY month
ORDER BY month DESC`,
	},
	{
		ID:    "most_popular_restaurant",
		Title: "Most popular restaurant by total orders",
		Group: GroupDashboard,
		SQL: `SELECT restaurant_id, COUNT(*) AS total_orders
FROM orders
GROUP BY restaurant_id
ORDER BY total_orders DESC, restaurant_id
LIMIT 1`,
	},
	{
		ID:    "cancelled_orders_per_restaurant",
		Title: "Cancelled orders per restaurant",
		Group: GroupDashboard,
		SQL: `SELECT restaurant_id, COUNT(*) AS cancelled_orders
FROM orders
WHERE status = 'Cancelled'
GROUP BY restaurant_id
ORDER BY restaurant_id`,
	},
	{
		ID:    "monthly_revenue",
		Title: "Revenue per month",
		Group: GroupDashboard,
		SQL: `SELECT to_char(order_date, 'YYYY-MM') AS month, SUM(total_amount) AS total_revenue
FROM orders
GROUP BY month
ORDER BY month DESC`,
	},
	{
		ID:    "top3_restaurants_by_rating",
		Title: "Top 3 restaurants by rating",
		Group: GroupDashboard,
		SQL: `SELECT restaurant_id, AVG(rating) AS avg_rating
FROM restaurants
GROUP BY restaurant_id
ORDER BY avg_rating DESC, restaurant_id
LIMIT 3`,
	},
	{
		ID:    "avg_discount",
		Title: "Average discount applied",
		Group: GroupDashboard,
		SQL:   `SELECT AVG(discount_applied) AS avg_discount FROM orders`,
	},
	{
		ID:    "avg_order_premium_customers",
		Title: "Average order amount for premium customers",
		Group: GroupDashboard,
		SQL: `SELECT AVG(total_amount) AS avg_order_amount
FROM orders
WHERE customer_id IN (SELECT customer_id FROM customers WHERE is_premium = TRUE)`,
	},
	{
		ID:    "total_cancelled_orders",
		Title: "Total cancelled orders",
		Group: GroupDashboard,
		SQL:   `SELECT COUNT(*) AS cancelled_orders FROM orders WHERE status = 'Cancelled'`,
	},
	{
		ID:    "avg_rating_per_restaurant",
		Title: "Average rating per restaurant",
		Group: GroupDashboard,
		SQL: `SELECT restaurant_id, AVG(rating) AS avg_rating
FROM restaurants
GROUP BY restaurant_id
ORDER BY restaurant_id`,
	},
	{
		ID:    "top_cuisine_preferences",
		Title: "Most common preferred cuisines",
		Group: GroupDashboard,
		SQL: `SELECT preferred_cuisine, COUNT(*) AS frequency
FROM customers
GROUP BY preferred_cuisine
ORDER BY frequency DESC, preferred_cuisine
LIMIT 5`,
	},
	{
		ID:    "orders_last_7_days",
		Title: "Orders placed in the last 7 days",
		Group: GroupDashboard,
		SQL: `SELECT * FROM orders
WHERE order_date >= CURRENT_DATE - INTERVAL '7 days'
ORDER BY order_date DESC, order_id`,
	},
	{
		ID:    "avg_delivery_fee",
		Title: "Average delivery fee",
		Group: GroupDashboard,
		SQL:   `SELECT AVG(delivery_fee) AS avg_delivery_fee FROM deliveries`,
	},
	{
		ID:    "active_restaurants",
		Title: "Number of active restaurants",
		Group: GroupDashboard,
		SQL:   `SELECT COUNT(*) AS active_restaurants FROM restaurants WHERE is_active = TRUE`,
	},
	{
		ID:    "orders_per_day",
		Title: "Orders placed per day",
		Group: GroupDashboard,
		SQL: `SELECT order_date::date AS order_day, COUNT(*) AS total_orders
FROM orders
GROUP BY order_day
ORDER BY order_day DESC`,
	},
	{
		ID:    "revenue_last_30_days",
		Title: "Revenue over the last 30 days",
		Group: GroupDashboard,
		SQL: `SELECT SUM(total_amount) AS total_revenue
FROM orders
WHERE order_date >= CURRENT_DATE - INTERVAL '30 days'`,
	},
	{
		ID:    "top_customers",
		Title: "Top customers by total orders",
		Group: GroupInsight,
		SQL: `SELECT name, total_orders, average_rating
FROM customers
ORDER BY total_orders DESC, customer_id
LIMIT 10`,
	},
	{
		ID:    "popular_restaurants",
		Title: "Most popular restaurants",
		Group: GroupInsight,
		SQL: `SELECT name, total_orders, rating
FROM restaurants
ORDER BY total_orders DESC, restaurant_id
LIMIT 10`,
	},
	{
		ID:    "avg_delivery_time",
		Title: "Average delivery time per restaurant",
		Group: GroupInsight,
		SQL: `SELECT r.name, AVG(d.delivery_time) AS avg_delivery_time
FROM restaurants r
JOIN orders o ON r.restaurant_id = o.restaurant_id
JOIN deliveries d ON o.order_id = d.order_id
GROUP BY r.name
ORDER BY avg_delivery_time ASC, r.name`,
	},
	{
		ID:    "peak_order_times",
		Title: "Peak ordering hours",
		Group: GroupInsight,
		SQL: `SELECT to_char(order_date, 'HH24') AS hour, COUNT(*) AS order_count
FROM orders
GROUP BY hour
ORDER BY order_count DESC, hour`,
	},
	{
		ID:    "delayed_deliveries",
		Title: "Orders delivered later than estimated",
		Group: GroupInsight,
		SQL: `SELECT o.order_id, c.name AS customer_name, r.name AS restaurant_name, d.estimated_time, d.delivery_time
FROM orders o
JOIN customers c ON o.customer_id = c.customer_id
JOIN restaurants r ON o.restaurant_id = r.restaurant_id
JOIN deliveries d ON o.order_id = d.order_id
WHERE d.delivery_time > d.estimated_time
ORDER BY o.order_id`,
	},
	{
		ID:    "delivery_performance",
		Title: "Delivery personnel performance",
		Group: GroupInsight,
		SQL: `SELECT dp.name, dp.total_deliveries, dp.average_rating
FROM delivery_persons dp
ORDER BY dp.average_rating DESC, dp.delivery_person_id
LIMIT 10`,
	},
	{
		ID:    "feedback_by_payment",
		Title: "Average feedback rating by payment mode",
		Group: GroupInsight,
		SQL: `SELECT payment_mode, AVG(feedback_rating) AS avg_rating
FROM orders
GROUP BY payment_mode
ORDER BY avg_rating DESC NULLS LAST, payment_mode`,
	},
}
