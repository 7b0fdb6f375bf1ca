// Package visits keeps privacy-conscious page view metrics in sqlite.
// Raw client addresses are never stored, only salted hashes.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TopPaths         []PathCount `json:"top_paths"`
	RecentVisitors   []Visit     `json:"recent_visitors"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_visited_at ON visitors (visited_at);`

type Store struct {
	db   *sql.DB
	salt string
}

// Open opens (creating if needed) the sqlite database at path. A fresh random
// salt is drawn per process, so hashes only correlate visits within one run.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	// sqlite serializes writers; one connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create visitors table")
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, salt: salt}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns a short, salted, one-way identifier for ip.
func HashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) Hash(ip string) string {
	return HashIP(s.salt, ip)
}

func (s *Store) Record(ctx context.Context, ip, userAgent, path string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.Hash(ip), userAgent, path, at.Unix())
	return errors.Wrap(err, "insert visit")
}

// Cleanup deletes visits older than before and returns how many were removed.
func (s *Store) Cleanup(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, before.Unix())
	if err != nil {
		return 0, errors.Wrap(err, "delete old visits")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return n, nil
}

// Stats summarizes recorded visits relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{TopPaths: []PathCount{}, RecentVisitors: []Visit{}}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrap(err, "count visits")
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n FROM visitors
		GROUP BY path ORDER BY n DESC, path ASC LIMIT 10`)
	if err != nil {
		return nil, errors.Wrap(err, "query top paths")
	}
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scan top path")
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate top paths")
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at FROM visitors
		ORDER BY visited_at DESC, id DESC LIMIT 50`)
	if err != nil {
		return nil, errors.Wrap(err, "query recent visits")
	}
	defer rows.Close()
	for rows.Next() {
		var v Visit
		var at int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, errors.Wrap(err, "scan recent visit")
		}
		v.Timestamp = time.Unix(at, 0).UTC()
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}
	return stats, errors.Wrap(rows.Err(), "iterate recent visits")
}
