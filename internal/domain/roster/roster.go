// Package roster narrows a season table by team and resolves individual
// players within the narrowed scope. Player option lists and player
// resolution always run over the same filtered slice, so a selection list
// can never reference a player its own filter excluded.
package roster

import (
	"fmt"
	"sort"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
)

// TeamAll is the sentinel team filter meaning "no filter".
const TeamAll = "(All)"

// FilterByTeam returns the rows whose team matches team. The TeamAll
// sentinel (or an empty string) returns rows unchanged. A zero-row result is
// an ordinary empty state.
func FilterByTeam(rows []model.PlayerSeasonRecord, team string) []model.PlayerSeasonRecord {
	if team == "" || team == TeamAll {
		return rows
	}
	var out []model.PlayerSeasonRecord
	for i := range rows {
		if rows[i].Team == team {
			out = append(out, rows[i])
		}
	}
	return out
}

// ResolvePlayer returns the first row whose player name matches exactly.
// The caller passes the already team-filtered scope it presented names from.
func ResolvePlayer(rows []model.PlayerSeasonRecord, player string) (model.PlayerSeasonRecord, error) {
	for i := range rows {
		if rows[i].Player == player {
			return rows[i], nil
		}
	}
	return model.PlayerSeasonRecord{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, player)
}

// Teams returns the sorted, deduplicated team codes present in rows.
func Teams(rows []model.PlayerSeasonRecord) []string {
	return uniqueSorted(rows, func(r *model.PlayerSeasonRecord) string { return r.Team })
}

// Players returns the sorted, deduplicated player names present in rows.
// Resolution still matches the first row in table order; this list only
// feeds selection UIs.
func Players(rows []model.PlayerSeasonRecord) []string {
	return uniqueSorted(rows, func(r *model.PlayerSeasonRecord) string { return r.Player })
}

func uniqueSorted(rows []model.PlayerSeasonRecord, key func(*model.PlayerSeasonRecord) string) []string {
	seen := make(map[string]struct{}, len(rows))
	var out []string
	for i := range rows {
		k := key(&rows[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
