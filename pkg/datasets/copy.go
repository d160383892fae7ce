package datasets

// CloneDetail creates a deep copy of a detail record. Every list field
// is freshly allocated so mutating the copy never affects the original.
func CloneDetail(detail Detail) Detail {
	detailCopy := detail
	detailCopy.DataTypes = cloneStrings(detail.DataTypes)
	detailCopy.Geography = cloneStrings(detail.Geography)
	detailCopy.Features = cloneStrings(detail.Features)
	detailCopy.Languages = cloneStrings(detail.Languages)
	detailCopy.Regions = cloneStrings(detail.Regions)
	detailCopy.Tags = cloneStrings(detail.Tags)
	return detailCopy
}

// CloneDataset creates a deep copy of a dataset including its detail record.
func CloneDataset(dataset Dataset) Dataset {
	datasetCopy := dataset
	datasetCopy.Detail = CloneDetail(dataset.Detail)
	return datasetCopy
}

// CloneDatasets creates a deep copy of a dataset slice.
// Returns nil if the input slice is nil.
func CloneDatasets(list []Dataset) []Dataset {
	if list == nil {
		return nil
	}
	result := make([]Dataset, len(list))
	for i, dataset := range list {
		result[i] = CloneDataset(dataset)
	}
	return result
}

// CloneDetailMap creates a deep copy of a name-to-detail map.
// Returns nil if the input map is nil.
func CloneDetailMap(source map[string]Detail) map[string]Detail {
	if source == nil {
		return nil
	}
	result := make(map[string]Detail, len(source))
	for name, detail := range source {
		result[name] = CloneDetail(detail)
	}
	return result
}

// CloneDatasetMap creates a deep copy of a name-to-dataset map.
// Returns nil if the input map is nil.
func CloneDatasetMap(source map[string]Dataset) map[string]Dataset {
	if source == nil {
		return nil
	}
	result := make(map[string]Dataset, len(source))
	for name, dataset := range source {
		result[name] = CloneDataset(dataset)
	}
	return result
}

// EmptyDetail returns a zero-valued detail record for a dataset that is
// referenced without a known detail. Defensive fallback; not surfaced
// under normal operation.
func EmptyDetail(name string) Detail {
	return Detail{
		Name:      name,
		DataTypes: []string{},
		Geography: []string{},
		Features:  []string{},
		Languages: []string{},
		Regions:   []string{},
		Tags:      []string{},
	}
}

// EmptyDataset returns a placeholder dataset so callers never render
// undefined state.
func EmptyDataset(name string) Dataset {
	return Dataset{
		Summary: Summary{
			Name:   name,
			Status: StatusOnTrack,
		},
		Detail: EmptyDetail(name),
	}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}
