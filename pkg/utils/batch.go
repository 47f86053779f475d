package utils

// ChunkStrings divide ids em lotes sequenciais de no máximo size elementos,
// cobrindo todos os ids exatamente uma vez e sem duplicatas
func ChunkStrings(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		if len(ids) == 0 {
			return nil
		}
		return [][]string{ids}
	}

	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}

	return batches
}
