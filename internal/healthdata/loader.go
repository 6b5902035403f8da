package healthdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"afyadash.or.ke/internal/logging"
)

// LoadOptions configures a Load call.
type LoadOptions struct {
	// Fill is the missing-numeric-cell policy. Nil means FillZero.
	Fill FillPolicy
	// Logger receives load diagnostics. Nil is allowed.
	Logger *slog.Logger
}

// Load reads the metrics CSV at path into an immutable Table. The schema is
// discovered from the header: the identity column is resolved (and renamed if
// found via the fallback heuristic), a column is numeric iff every non-empty
// cell parses as a float, missing numeric cells are filled per the policy, and
// the county column is derived by applying the resolver to each row's identity
// value. The "_pct" service-column set is recorded as table metadata.
func Load(path string, resolver *Resolver, opts LoadOptions) (*Table, error) {
	fill := opts.Fill
	if fill == nil {
		fill = FillZero{}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q: %w", ErrDataNotFound, path, err)
		}
		return nil, fmt.Errorf("opening metrics data %q: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f, opts.Logger, "load_metrics_data")

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading metrics data %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("metrics data %q has no header row", path)
	}

	header := records[0]
	body := records[1:]

	resolution, err := resolveIdentityColumn(header)
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	copy(columns, header)
	idIdx := -1
	for j, name := range columns {
		if name == resolution.Source {
			columns[j] = IdentityColumn
			idIdx = j
			break
		}
	}

	colIndex := make(map[string]int, len(columns)+1)
	for j, name := range columns {
		colIndex[name] = j
	}

	numeric := inferNumericColumns(columns, body, idIdx)

	countyIdx, ok := colIndex[CountyColumn]
	if !ok {
		countyIdx = len(columns)
		columns = append(columns, CountyColumn)
		colIndex[CountyColumn] = countyIdx
	}
	numeric[CountyColumn] = false

	rows := make([]Row, 0, len(body))
	for _, record := range body {
		row := make(Row, len(columns))
		for j := range record {
			if j == countyIdx {
				continue
			}
			cell := strings.TrimSpace(record[j])
			if numeric[columns[j]] {
				if cell == "" {
					row[j] = fill.Missing()
					continue
				}
				v, parseErr := strconv.ParseFloat(cell, 64)
				if parseErr != nil {
					return nil, fmt.Errorf("metrics data %q: column %q: %w", path, columns[j], parseErr)
				}
				row[j] = v
			} else {
				row[j] = cell
			}
		}
		row[countyIdx] = resolver.Resolve(strings.TrimSpace(record[idIdx]))
		rows = append(rows, row)
	}

	var service []string
	for _, name := range columns {
		if isServiceColumn(name) {
			service = append(service, name)
		}
	}

	if resolution.Renamed && opts.Logger != nil {
		opts.Logger.Info("identity column renamed",
			slog.String("from", resolution.Source),
			slog.String("to", IdentityColumn))
	}

	return &Table{
		columns:  columns,
		colIndex: colIndex,
		numeric:  numeric,
		service:  service,
		rows:     rows,
	}, nil
}

// inferNumericColumns classifies each non-identity column: numeric iff it has
// at least one non-empty cell and every non-empty cell parses as a float. The
// identity column is always text.
func inferNumericColumns(columns []string, body [][]string, idIdx int) map[string]bool {
	numeric := make(map[string]bool, len(columns))
	for j, name := range columns {
		if j == idIdx {
			continue
		}
		nonEmpty := 0
		allFloat := true
		for _, record := range body {
			if j >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[j])
			if cell == "" {
				continue
			}
			nonEmpty++
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
				break
			}
		}
		numeric[name] = nonEmpty > 0 && allFloat
	}
	return numeric
}
