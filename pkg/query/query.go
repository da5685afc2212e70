// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-style URL query parameters.
package query

import (
	"strconv"
	"strings"
)

// IDs parses repeated and/or comma-separated values ("1,2&ids=3") into
// positive int64 ids. Non-numeric and non-positive entries are dropped and
// duplicates keep their first position.
func IDs(vals []string) []int64 {
	var res []int64
	seen := make(map[int64]struct{})
	for _, raw := range vals {
		for _, part := range StringSlice(raw) {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			res = append(res, id)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
