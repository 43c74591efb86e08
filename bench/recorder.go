// Copyright 2024-2026 The Adaptrie Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"strconv"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const memoryDB = "MEMORY"

var createRuns = `
create table if not exists Runs(
    i integer primary key,
    run text not null,
    started text not null,
    variant text not null,
    keyset text not null,
    round integer not null,
    keys integer not null,
    distinct_keys integer not null,
    insert_ns integer not null,
    serialize_ns integer not null,
    json_bytes integer not null,
    nodes integer not null,
    arrays integer not null,
    max_depth integer not null,
    fill real not null,
    digest text not null);`

var insertRun = `
insert into Runs(run, started, variant, keyset, round, keys, distinct_keys,
    insert_ns, serialize_ns, json_bytes, nodes, arrays, max_depth, fill, digest)
values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

var selectRuns = `
select run, started, variant, keyset, round, keys, distinct_keys, insert_ns,
    nodes, max_depth, fill, digest from Runs order by i;`

// Recorder stores benchmark results in an sqlite database.
type Recorder struct {
	conn   *sqlite.Conn
	dbFile string
}

// Row is one stored result.
type Row struct {
	Run      string
	Started  time.Time
	Variant  string
	Keyset   string
	Round    int
	Keys     int
	Distinct int
	Insert   time.Duration
	Nodes    int
	MaxDepth int
	Fill     float64
	Digest   uint64
}

// OpenRecorder opens or creates the database at path. An empty path keeps
// the results in memory.
func OpenRecorder(path string) (*Recorder, error) {
	var (
		conn   *sqlite.Conn
		err    error
		dbFile = path
	)
	if path == "" {
		dbFile = memoryDB
		conn, err = sqlite.OpenConn(dbFile,
			sqlite.OpenReadWrite|sqlite.OpenCreate|sqlite.OpenMemory)
	} else {
		conn, err = sqlite.OpenConn(dbFile)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbFile, err)
	}
	if err = sqlitex.ExecuteTransient(conn, createRuns, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Recorder{conn: conn, dbFile: dbFile}, nil
}

// Record stores results under run in a single transaction.
func (r *Recorder) Record(run string, cfg Config, started time.Time, results []Result) (err error) {
	defer sqlitex.Save(r.conn)(&err)

	ts := started.UTC().Format(time.RFC3339Nano)
	for _, res := range results {
		err = sqlitex.Execute(r.conn, insertRun, &sqlitex.ExecOptions{
			Args: []any{
				run, ts, res.Variant.String(), cfg.Keyset.String(), res.Round,
				res.Keys, res.Distinct, int64(res.Insert), int64(res.Serialize),
				res.JSONBytes, res.Stats.Nodes, res.Stats.Arrays, res.Stats.MaxDepth,
				res.Stats.Fill(), strconv.FormatUint(res.Digest, 16),
			},
		})
		if err != nil {
			return fmt.Errorf("record %s: %w", res.Variant, err)
		}
	}
	return nil
}

// Rows returns every stored result in insertion order.
func (r *Recorder) Rows() ([]Row, error) {
	var rows []Row
	err := sqlitex.Execute(r.conn, selectRuns, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			started, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(1))
			if err != nil {
				return err
			}
			digest, err := strconv.ParseUint(stmt.ColumnText(11), 16, 64)
			if err != nil {
				return err
			}
			rows = append(rows, Row{
				Run:      stmt.ColumnText(0),
				Started:  started,
				Variant:  stmt.ColumnText(2),
				Keyset:   stmt.ColumnText(3),
				Round:    stmt.ColumnInt(4),
				Keys:     stmt.ColumnInt(5),
				Distinct: stmt.ColumnInt(6),
				Insert:   time.Duration(stmt.ColumnInt64(7)),
				Nodes:    stmt.ColumnInt(8),
				MaxDepth: stmt.ColumnInt(9),
				Fill:     stmt.ColumnFloat(10),
				Digest:   digest,
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	return rows, nil
}

// Close closes the database connection.
func (r *Recorder) Close() error {
	return r.conn.Close()
}
