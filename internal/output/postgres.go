package output

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5/pgxpool"
)

const writeTimeout = 5 * time.Second

// eventTables mirrors the flat event records, one fact table per topic.
var eventTables = []string{
	`CREATE TABLE IF NOT EXISTS fact_session (
        timestamp BIGINT NOT NULL, event_type TEXT NOT NULL, session_id TEXT NOT NULL,
        earnings DOUBLE PRECISION, total_deliveries BIGINT, failed_deliveries BIGINT, best_streak BIGINT
    )`,
	`CREATE TABLE IF NOT EXISTS fact_order_queue (
        timestamp BIGINT NOT NULL, event_type TEXT NOT NULL, session_id TEXT NOT NULL,
        queue_length BIGINT, order_ids TEXT, total_payable DOUBLE PRECISION
    )`,
	`CREATE TABLE IF NOT EXISTS fact_order_status (
        timestamp BIGINT NOT NULL, event_type TEXT NOT NULL, session_id TEXT NOT NULL,
        order_id TEXT, restaurant_id TEXT, restaurant_name TEXT, from_status TEXT, to_status TEXT,
        distance DOUBLE PRECISION, time_limit_seconds BIGINT
    )`,
	`CREATE TABLE IF NOT EXISTS fact_delivery_completed (
        timestamp BIGINT NOT NULL, event_type TEXT NOT NULL, session_id TEXT NOT NULL,
        order_id TEXT, restaurant_id TEXT, customer_name TEXT, delivery_address TEXT,
        delivery_lat DOUBLE PRECISION, delivery_lon DOUBLE PRECISION, distance DOUBLE PRECISION,
        base_pay DOUBLE PRECISION, distance_pay DOUBLE PRECISION, tip DOUBLE PRECISION,
        total_pay DOUBLE PRECISION, rating TEXT, duration_seconds DOUBLE PRECISION
    )`,
	`CREATE TABLE IF NOT EXISTS fact_delivery_failed (
        timestamp BIGINT NOT NULL, event_type TEXT NOT NULL, session_id TEXT NOT NULL,
        order_id TEXT, restaurant_id TEXT, reason TEXT, picked_up BOOLEAN, elapsed_seconds DOUBLE PRECISION
    )`,
	`CREATE TABLE IF NOT EXISTS fact_score (
        timestamp BIGINT NOT NULL, event_type TEXT NOT NULL, session_id TEXT NOT NULL,
        earnings DOUBLE PRECISION, total_deliveries BIGINT, failed_deliveries BIGINT,
        streak BIGINT, best_streak BIGINT
    )`,
}

// PostgresOutput appends every event as a row in its topic's fact table.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(ctx context.Context, databaseURL string) (*PostgresOutput, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	p := &PostgresOutput{pool: pool}
	if err := p.ensureTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresOutput) ensureTables(ctx context.Context) error {
	for _, ddl := range eventTables {
		if _, err := p.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create event table: %w", err)
		}
	}
	return nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	table := topicToTable(topic)
	cols, vals, placeholders := buildInsertComponents(event)
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, placeholders)

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if _, err := p.pool.Exec(ctx, query, vals...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}

// topicToTable maps score_events to fact_score and so on.
func topicToTable(topic string) string {
	return "fact_" + strings.TrimSuffix(topic, "_events")
}

// buildInsertComponents orders columns by key so the same topic always
// produces the same statement.
func buildInsertComponents(event map[string]interface{}) (string, []interface{}, string) {
	keys := make([]string, 0, len(event))
	for k := range event {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	columns := make([]string, 0, len(keys))
	values := make([]interface{}, 0, len(keys))
	placeholders := make([]string, 0, len(keys))
	for i, key := range keys {
		val := event[key]
		// JSON numbers arrive as float64; whole ones go to BIGINT columns.
		if f, ok := val.(float64); ok && f == float64(int64(f)) {
			val = int64(f)
		}
		columns = append(columns, snakeCaseKey(key))
		values = append(values, val)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	return strings.Join(columns, ", "),
		values,
		strings.Join(placeholders, ", ")
}

func snakeCaseKey(key string) string {
	var result strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}
