package scheduler

import "math"

// Chunk splits a task's estimate into placement units measured in slots.
// Non-splittable tasks produce a single unit covering the whole estimate.
// The sizes always sum to ceil(EstimatedMinutes/SlotMinutes) and no unit is
// empty; a zero estimate yields no units.
func Chunk(t Task, cfg Config) []int {
	totalSlots := ceilDiv(t.EstimatedMinutes, cfg.SlotMinutes)
	if totalSlots <= 0 {
		return nil
	}
	if !t.Splittable {
		return []int{totalSlots}
	}

	chunkSlots := int(math.Round(float64(cfg.ChunkMinutes(t.FocusNeed)) / float64(cfg.SlotMinutes)))
	if chunkSlots < 1 {
		chunkSlots = 1
	}

	chunks := make([]int, 0, ceilDiv(totalSlots, chunkSlots))
	for remaining := totalSlots; remaining > 0; {
		size := min(chunkSlots, remaining)
		chunks = append(chunks, size)
		remaining -= size
	}
	return chunks
}
