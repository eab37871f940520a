package book_mandap

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

const (
	msgDateFormat    = "Please enter date and time in the format YYYY-MM-DDTHH:mm:ss (e.g. 2025-05-22T14:30:00)."
	msgCheckInput    = "Please check your input and try again."
	upstreamDateHint = "format"
)

// validateRequest проверяет форму бронирования
func validateRequest(req *Request) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.MandapID) == "" {
		errs.Add("kalyanmandap", "Please select a mandap")
	}
	if strings.TrimSpace(req.Occasion) == "" {
		errs.Add("occasion", "Occasion is required")
	}
	if !isPositive(req.NumberOfPeople) {
		errs.Add("number_of_people", "Enter a valid number of people")
	}

	start, startOK := parseDateTime(req.StartDatetime, "start_datetime", "Start date & time is required", &errs)
	end, endOK := parseDateTime(req.EndDatetime, "end_datetime", "End date & time is required", &errs)
	if startOK && endOK && !start.Before(end) {
		errs.Add("end_datetime", "End date & time must be after the start")
	}

	if !isPositive(req.Duration) {
		errs.Add("duration", "Enter a valid duration (in hours)")
	}
	return errs
}

func parseDateTime(value, field, requiredMsg string, errs *domain.ValidationErrors) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, requiredMsg)
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateTimeFormat, value)
	if err != nil {
		errs.Add(field, msgDateFormat)
		return time.Time{}, false
	}
	return t, true
}

func isPositive(value string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && v > 0
}

// rejectionMessages сообщения об отказе сервера: сначала подсказка по формату даты,
// затем остальные сообщения без повторов и без упоминаний формата
func rejectionMessages(vErr *citizenapi.ValidationError) []string {
	var msgs []string
	if vErr.HasField("start_datetime") || vErr.HasField("end_datetime") {
		msgs = append(msgs, msgDateFormat)
	}

	seen := make(map[string]bool, len(msgs))
	for _, m := range msgs {
		seen[m] = true
	}
	add := func(m string) {
		if m == "" || seen[m] || strings.Contains(strings.ToLower(m), upstreamDateHint) {
			return
		}
		seen[m] = true
		msgs = append(msgs, m)
	}

	for _, field := range sortedFields(vErr.Fields) {
		for _, m := range vErr.Fields[field] {
			add(m)
		}
	}
	add(vErr.Detail)

	if len(msgs) == 0 {
		msgs = append(msgs, msgCheckInput)
	}
	return msgs
}

func sortedFields(fields map[string][]string) []string {
	res := make([]string, 0, len(fields))
	for field := range fields {
		res = append(res, field)
	}
	sort.Strings(res)
	return res
}
