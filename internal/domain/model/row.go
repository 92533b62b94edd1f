package model

// RawCell is one spreadsheet cell paired with its raw (un-normalized) header.
type RawCell struct {
	Header string
	Value  string
}

// RawRow is one physical spreadsheet row. Column order is preserved because
// first-non-empty alias resolution depends on it.
type RawRow []RawCell
