package core

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

// rawRecord mirrors schema.RepoRecord with pointer fields so that missing keys
// can be told apart from zero values during schema validation.
type rawRecord struct {
	GithubURL        *string      `json:"github_url"`
	StarCount        *int64       `json:"star_count"`
	CodeQuality      *float64     `json:"code_quality"`
	Innovativeness   *float64     `json:"innovativeness"`
	Usefulness       *float64     `json:"usefulness"`
	UserFriendliness *float64     `json:"user_friendliness"`
	Underrated       *schema.Flag `json:"underrated"`
	Overrated        *schema.Flag `json:"overrated"`
	Motivation       *string      `json:"motivation"`
	ProjectDomain    *string      `json:"project_domain"`
}

// requiredFields lists the fields every record must carry, in report order.
var requiredFields = []struct {
	name    string
	present func(*rawRecord) bool
}{
	{"github_url", func(r *rawRecord) bool { return r.GithubURL != nil }},
	{"star_count", func(r *rawRecord) bool { return r.StarCount != nil }},
	{"code_quality", func(r *rawRecord) bool { return r.CodeQuality != nil }},
	{"innovativeness", func(r *rawRecord) bool { return r.Innovativeness != nil }},
	{"usefulness", func(r *rawRecord) bool { return r.Usefulness != nil }},
	{"user_friendliness", func(r *rawRecord) bool { return r.UserFriendliness != nil }},
}

// LoadRecords parses the repository record collection from a JSON file.
// A missing file, malformed JSON, a record with missing required fields, or an
// empty collection all abort the run with an input error before any artifact
// is produced.
func LoadRecords(path string) ([]schema.RepoRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", contract.ErrInput, path, err)
	}

	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON in %s: %v", contract.ErrInput, path, err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: %s contains no records", contract.ErrInput, path)
	}

	records := make([]schema.RepoRecord, 0, len(raws))
	for i := range raws {
		raw := &raws[i]
		for _, rf := range requiredFields {
			if !rf.present(raw) {
				return nil, fmt.Errorf("%w: record %d is missing required field %q", contract.ErrInput, i, rf.name)
			}
		}

		rec := schema.RepoRecord{
			GithubURL:        *raw.GithubURL,
			StarCount:        *raw.StarCount,
			CodeQuality:      *raw.CodeQuality,
			Innovativeness:   *raw.Innovativeness,
			Usefulness:       *raw.Usefulness,
			UserFriendliness: *raw.UserFriendliness,
			ProjectDomain:    "Unknown",
		}
		// Flags, motivation and domain may be omitted by the classifier.
		if raw.Underrated != nil {
			rec.Underrated = *raw.Underrated
		}
		if raw.Overrated != nil {
			rec.Overrated = *raw.Overrated
		}
		if raw.Motivation != nil {
			rec.Motivation = *raw.Motivation
		}
		if raw.ProjectDomain != nil && *raw.ProjectDomain != "" {
			rec.ProjectDomain = *raw.ProjectDomain
		}
		records = append(records, rec)
	}

	return records, nil
}
