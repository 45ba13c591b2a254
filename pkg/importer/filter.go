// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// FilterOptions configures record filtering.
type FilterOptions struct {
	IncludeFolders     []string // only keep records under these folders
	ExcludeFolders     []string // drop records under these folders
	ExcludeURLPatterns []string // drop locations matching these regexps

	ExcludeProtocols []string // schemes to drop, e.g. "javascript"
	WarnProtocols    []string // schemes to keep with a warning
	MaxURLLength     int      // 0 means no limit
	WarnURLLength    int      // 0 means no warning
}

// FilterResult contains the kept records and any warnings generated.
type FilterResult struct {
	Records  []Record
	Warnings []string
	Excluded int
}

// Filter applies opts to records. Folder rules match substrings of the
// slash-joined folder path. Invalid patterns are reported as warnings and
// otherwise ignored.
func Filter(records []Record, opts FilterOptions) FilterResult {
	var result FilterResult

	var patterns []*regexp.Regexp
	for _, p := range opts.ExcludeURLPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("ignoring URL pattern %q: %v", p, err))
			continue
		}
		patterns = append(patterns, re)
	}

	excludeProtos := lowerSet(opts.ExcludeProtocols)
	warnProtos := lowerSet(opts.WarnProtocols)

	for _, r := range records {
		proto := scheme(r.Location)
		if excludeProtos[proto] || excluded(r, opts, patterns) {
			result.Excluded++
			continue
		}

		if warnProtos[proto] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("bookmark '%s' uses protocol '%s': %s", truncate(r.Title, 40), proto, truncate(r.Location, 60)))
		}
		if opts.WarnURLLength > 0 && len(r.Location) > opts.WarnURLLength {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("bookmark '%s' has long URL (%d chars): %s", truncate(r.Title, 40), len(r.Location), truncate(r.Location, 60)))
		}

		result.Records = append(result.Records, r)
	}

	return result
}

func excluded(r Record, opts FilterOptions, patterns []*regexp.Regexp) bool {
	if opts.MaxURLLength > 0 && len(r.Location) > opts.MaxURLLength {
		return true
	}

	folder := strings.Join(r.Folders, "/")
	if len(opts.IncludeFolders) > 0 && !containsAny(folder, opts.IncludeFolders) {
		return true
	}
	if containsAny(folder, opts.ExcludeFolders) {
		return true
	}

	for _, p := range patterns {
		if p.MatchString(r.Location) {
			return true
		}
	}
	return false
}

// Deduplicate drops records whose location and folder path were already
// seen, keeping the first.
func Deduplicate(records []Record) []Record {
	seen := make(map[string]bool)
	var out []Record
	for _, r := range records {
		key := strings.Join(r.Folders, "/") + "\x00" + r.Location
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// scheme returns the lowercased scheme of location, or "" if it has none.
func scheme(location string) string {
	idx := strings.Index(location, ":")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(location[:idx])
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
