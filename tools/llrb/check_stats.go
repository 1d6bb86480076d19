package main

func newgenstats() map[string]int {
	stats := map[string]int{
		"total":     0,
		"get.ok":    0,
		"get.na":    0,
		"min.ok":    0,
		"min.na":    0,
		"max.ok":    0,
		"max.na":    0,
		"delmin.ok": 0,
		"delmin.na": 0,
		"delmax.ok": 0,
		"delmax.na": 0,
		"upsert":    0,
		"insert":    0,
		"delete.ok": 0,
		"delete.na": 0,
		"rank":      0,
		"select.ok": 0,
		"select.na": 0,
		"floor.ok":  0,
		"floor.na":  0,
		"ceil.ok":   0,
		"ceil.na":   0,
		"range":     0,
		"validate":  0,
	}
	return stats
}
