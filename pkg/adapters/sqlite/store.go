// Package sqlite implements catalog snapshot export using SQLite as the
// storage engine. Snapshots make the catalog queryable outside the process
// (ad-hoc SQL over topics, snippets, and notes).
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/aretw0/rosetta/pkg/domain"
)

//go:embed schema.sql
var schemaSQL string

// Store persists catalog snapshots to a SQLite database file.
type Store struct {
	db *sql.DB
}

// Snapshot describes one exported catalog value.
type Snapshot struct {
	ID        string
	Digest    string
	CreatedAt time.Time
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Export writes the catalog value as a new snapshot and returns its ID.
// The whole snapshot is written in one transaction: a partial export never
// becomes visible.
func (s *Store) Export(ctx context.Context, digest string, topics []domain.Topic) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, digest, created_at) VALUES (?, ?, ?)`,
		id, digest, createdAt,
	); err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for pos, topic := range topics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topics (snapshot_id, position, name, title, prose) VALUES (?, ?, ?, ?, ?)`,
			id, pos, topic.Name, topic.Title, topic.Prose,
		); err != nil {
			return "", fmt.Errorf("failed to insert topic %s: %w", topic.Name, err)
		}

		if err := insertSnippet(ctx, tx, id, topic.Name, "base", topic.BaseSnippet); err != nil {
			return "", err
		}
		if err := insertSnippet(ctx, tx, id, topic.Name, "tidy", topic.TidySnippet); err != nil {
			return "", err
		}

		for npos, note := range topic.Notes {
			kind := note.Kind
			if kind == "" {
				kind = domain.NoteObservation
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO notes (snapshot_id, topic_name, position, kind, text) VALUES (?, ?, ?, ?, ?)`,
				id, topic.Name, npos, kind, note.Text,
			); err != nil {
				return "", fmt.Errorf("failed to insert note for %s: %w", topic.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return id, nil
}

func insertSnippet(ctx context.Context, tx *sql.Tx, snapshotID, topicName, idiom string, stmts []string) error {
	for pos, stmt := range stmts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snippets (snapshot_id, topic_name, idiom, position, statement) VALUES (?, ?, ?, ?, ?)`,
			snapshotID, topicName, idiom, pos, stmt,
		); err != nil {
			return fmt.Errorf("failed to insert %s snippet for %s: %w", idiom, topicName, err)
		}
	}
	return nil
}

// Snapshots lists exported snapshots, newest first.
func (s *Store) Snapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, digest, created_at FROM snapshots ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var createdAt string
		if err := rows.Scan(&snap.ID, &snap.Digest, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			snap.CreatedAt = ts
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Topics reads a snapshot back in authored order.
func (s *Store) Topics(ctx context.Context, snapshotID string) ([]domain.Topic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, title, prose FROM topics WHERE snapshot_id = ? ORDER BY position`,
		snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Name, &t.Title, &t.Prose); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range topics {
		if topics[i].BaseSnippet, err = s.snippet(ctx, snapshotID, topics[i].Name, "base"); err != nil {
			return nil, err
		}
		if topics[i].TidySnippet, err = s.snippet(ctx, snapshotID, topics[i].Name, "tidy"); err != nil {
			return nil, err
		}
		if topics[i].Notes, err = s.notes(ctx, snapshotID, topics[i].Name); err != nil {
			return nil, err
		}
	}
	return topics, nil
}

func (s *Store) snippet(ctx context.Context, snapshotID, topicName, idiom string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT statement FROM snippets WHERE snapshot_id = ? AND topic_name = ? AND idiom = ? ORDER BY position`,
		snapshotID, topicName, idiom)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s snippet for %s: %w", idiom, topicName, err)
	}
	defer rows.Close()

	var stmts []string
	for rows.Next() {
		var stmt string
		if err := rows.Scan(&stmt); err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, rows.Err()
}

func (s *Store) notes(ctx context.Context, snapshotID, topicName string) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, text FROM notes WHERE snapshot_id = ? AND topic_name = ? ORDER BY position`,
		snapshotID, topicName)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for %s: %w", topicName, err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.Kind, &n.Text); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
