package portfolio

import "strings"

// Filter returns the projects whose name contains query, ignoring case.
// An empty query matches everything. The result keeps the input order.
func Filter(projects []Project, query string) []Project {
	if query == "" {
		out := make([]Project, len(projects))
		copy(out, projects)
		return out
	}

	needle := strings.ToLower(query)
	var out []Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
