package entities

// Row is one record keyed by column name, as handed to table renderers.
type Row = map[string]any
