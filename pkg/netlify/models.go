package netlify

// Form is a form registered on a site, as returned by
// GET /api/v1/sites/{site_id}/forms.
type Form struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Submission is a single form submission. Netlify exposes the submitted
// key/value pairs under "data" on newer payloads and "fields" on older ones,
// so both are kept and Field prefers "data".
type Submission struct {
	ID        string         `json:"id"`
	CreatedAt string         `json:"created_at"`
	Data      map[string]any `json:"data"`
	Fields    map[string]any `json:"fields"`
}

// Field returns the named submitted value as a string, or "" when absent or
// not a string.
func (s Submission) Field(name string) string {
	if v, ok := s.Data[name]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	if v, ok := s.Fields[name]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}
