package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/coolbeans/labreport/pkg/benchmark"
	"github.com/coolbeans/labreport/pkg/extract"
	"github.com/coolbeans/labreport/pkg/report"
	"github.com/coolbeans/labreport/pkg/summary"
)

// analyzeRequest is the POST /analyze body: the document reader's output.
type analyzeRequest struct {
	Lines  []string     `json:"lines"`
	Tables [][][]string `json:"tables"`
}

// analyzeResponse carries the enriched results plus presentation extras.
type analyzeResponse struct {
	Results         []report.Enriched `json:"results"`
	Stats           report.Stats      `json:"stats"`
	PatientSummary  string            `json:"patient_summary"`
	ClinicalSummary string            `json:"clinical_summary"`
}

func serveCmd() *cobra.Command {
	var (
		addr           string
		benchmarksPath string
		watch          bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve extraction and classification over HTTP",
		Long: `Start an HTTP service exposing the analysis pipeline.

Endpoints:
  GET  /health   liveness check
  POST /analyze  {"lines": [...], "tables": [[[...]]]} -> classified results

Example:
  labreport serve --addr :8080 --benchmarks custom.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(benchmarksPath)
			if err != nil {
				return err
			}

			if watch {
				if benchmarksPath == "" {
					return fmt.Errorf("--watch requires --benchmarks")
				}
				registry.SetOnReload(func(count int, err error) {
					if err != nil {
						log.Printf("benchmark reload failed, keeping previous table: %v", err)
						return
					}
					log.Printf("benchmark table reloaded: %d entries", count)
				})
				if err := registry.Watch(); err != nil {
					return err
				}
				defer registry.StopWatch()
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/health", healthHandler)
			mux.HandleFunc("/analyze", analyzeHandler(registry))

			log.Printf("labreport listening on %s (%d benchmark entries)", addr, registry.Count())
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&benchmarksPath, "benchmarks", "", "Path to a YAML benchmark table (default: built-in)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the benchmark table when the file changes")
	return cmd
}

// GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "labreport is running",
	})
}

// POST /analyze
func analyzeHandler(registry *benchmark.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Lines) == 0 && len(req.Tables) == 0 {
			http.Error(w, "Nothing to analyze: provide lines and/or tables", http.StatusBadRequest)
			return
		}

		doc := extract.Document{Lines: req.Lines}
		for _, rows := range req.Tables {
			doc.Tables = append(doc.Tables, extract.Table(rows))
		}

		results := benchmark.Compare(doc.Extract(), registry.Entries())
		writeJSON(w, http.StatusOK, analyzeResponse{
			Results:         results,
			Stats:           report.Aggregate(results),
			PatientSummary:  summary.Patient(results),
			ClinicalSummary: summary.Clinical(results),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
