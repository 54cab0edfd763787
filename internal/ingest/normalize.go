package ingest

import (
	"strings"

	"github.com/jobfolio/jobhub/internal/models"
)

// Normalize maps one raw job object, in whichever vocabulary its source uses,
// into the canonical models.Job shape. Every field degrades independently to
// nil when the source omits it; nothing here ever fails.
//
// The two feed formats we ingest disagree on several field names
// (employmentType vs job_type, datePosted vs date_posted, a direct job_url vs
// a jobProviders list), so each canonical field takes the first variant that
// is present.
func Normalize(raw map[string]any, source string) models.Job {
	return models.Job{
		ID:             stringOr(raw, "id"),
		Title:          stringField(raw, "title"),
		Company:        stringField(raw, "company"),
		Location:       stringField(raw, "location"),
		EmploymentType: firstString(raw, "employmentType", "job_type"),
		DatePosted:     firstString(raw, "datePosted", "date_posted"),
		SalaryMin:      floatField(raw, "min_amount"),
		SalaryMax:      floatField(raw, "max_amount"),
		SalaryCurrency: stringField(raw, "currency"),
		IsRemote:       boolField(raw, "is_remote"),
		Description:    stringField(raw, "description"),
		JobURL:         resolveURL(raw),
		Source:         source,
		Email:          emailField(raw),
	}
}

// resolveURL picks the listing URL out of the two shapes the feeds use.
// A direct job_url always wins; otherwise the first jobProviders entry is
// taken. No well-formedness checks, per the pass-through contract.
func resolveURL(raw map[string]any) *string {
	if u := stringField(raw, "job_url"); u != nil {
		return u
	}
	providers, ok := raw["jobProviders"].([]any)
	if !ok || len(providers) == 0 {
		return nil
	}
	first, ok := providers[0].(map[string]any)
	if !ok {
		return nil
	}
	return stringField(first, "url")
}

// emailField reads the raw "emails" field. Some feeds send a single address,
// others an array; arrays are joined with "; " so the text column holds a
// readable value instead of a stringified slice. Anything else is dropped.
func emailField(raw map[string]any) *string {
	switch v := raw["emails"].(type) {
	case string:
		return &v
	case []any:
		var parts []string
		for _, e := range v {
			if s, ok := e.(string); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return nil
		}
		joined := strings.Join(parts, "; ")
		return &joined
	default:
		return nil
	}
}

func stringField(raw map[string]any, key string) *string {
	if s, ok := raw[key].(string); ok {
		return &s
	}
	return nil
}

// stringOr returns the field as a plain string, "" when absent.
func stringOr(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func firstString(raw map[string]any, keys ...string) *string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

func floatField(raw map[string]any, key string) *float64 {
	switch v := raw[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}
