package alumni

import "sort"

// Series is one labeled data series for the dashboard charts.
type Series struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Stats is the dashboard payload: totals plus per-batch and per-department
// registration counts. Chart presentation is left to the client.
type Stats struct {
	TotalAlumni  int    `json:"totalAlumni"`
	ByBatch      Series `json:"byBatch"`
	ByDepartment Series `json:"byDepartment"`
}

// ComputeStats aggregates the directory. Batch labels are sorted so the
// registration series reads chronologically; department labels are sorted for
// stable output.
func ComputeStats(records []Record) Stats {
	return Stats{
		TotalAlumni:  len(records),
		ByBatch:      countBy(records, func(r Record) string { return r.Batch }),
		ByDepartment: countBy(records, func(r Record) string { return r.Department }),
	}
}

func countBy(records []Record, key func(Record) string) Series {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	data := make([]int, len(labels))
	for i, label := range labels {
		data[i] = counts[label]
	}
	return Series{Labels: labels, Data: data}
}
