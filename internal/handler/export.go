package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
)

// exportHeader is the CSV column order for itinerary exports.
var exportHeader = []string{
	"day_date", "activity", "type", "location",
	"start_time", "end_time", "priority", "cost", "currency", "status", "notes",
}

// ExportTrip handles GET /api/trips/{tripID}/export.
// It streams the trip's itinerary as CSV, one row per activity.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}

	rows, err := s.exporter.Export(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "itinerary-"+tripID.String()+".csv"))

	cw := csv.NewWriter(w)
	_ = cw.Write(exportHeader)
	for _, row := range rows {
		_ = cw.Write([]string{
			row.DayDate,
			row.ActivityName,
			row.Type,
			row.Location,
			row.StartTime,
			row.EndTime,
			strconv.Itoa(row.Priority),
			strconv.FormatFloat(row.Cost, 'f', 2, 64),
			row.Currency,
			row.Status,
			row.Notes,
		})
	}
	cw.Flush()
}
