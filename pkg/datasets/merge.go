package datasets

// Merge joins summary rows with their detail records. A summary without
// a matching detail falls back to the built-in default detail for that
// name, then to an empty detail record. Every returned dataset carries
// freshly allocated detail state.
func Merge(summaries []Summary, details map[string]Detail) []Dataset {
	result := make([]Dataset, 0, len(summaries))
	for _, summary := range summaries {
		detail, ok := details[summary.Name]
		if !ok {
			detail, ok = defaultDetailMap()[summary.Name]
		}
		if !ok {
			detail = EmptyDetail(summary.Name)
		}
		result = append(result, Dataset{
			Summary: summary,
			Detail:  CloneDetail(detail),
		})
	}
	return result
}

// MapByName keys datasets by name, cloning each row. The last row wins
// when names collide; the model assumes at most one live row per name.
func MapByName(rows []Dataset) map[string]Dataset {
	result := make(map[string]Dataset, len(rows))
	for _, row := range rows {
		result[row.Name] = CloneDataset(row)
	}
	return result
}
