package shell

import (
	"encoding/json"
	"fmt"
	"io"

	"src.tddcalc.sh/pkg/calc"
	"src.tddcalc.sh/pkg/store/storedefs"
)

type historyEntry struct {
	Seq   int     `json:"seq"`
	Keys  string  `json:"keys"`
	Value float64 `json:"value"`
}

// Prints all results in the store, either as tab-separated lines or as JSON
// lines.
func showHistory(w io.Writer, st storedefs.Store, asJSON bool) error {
	upto, err := st.NextResultSeq()
	if err != nil {
		return err
	}
	results, err := st.Results(0, upto)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, r := range results {
		if asJSON {
			if err := enc.Encode(historyEntry(r)); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.Seq, r.Keys, calc.FormatNum(r.Value, -1))
		}
	}
	return nil
}
