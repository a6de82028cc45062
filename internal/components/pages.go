package components

import "github.com/taurgis/aegis-docsite/internal/domain"

// Pages returns every registered content page in navigation order.
func Pages() []domain.Page {
	return []domain.Page{
		NewHomePage(),
	}
}

// Samples returns every registered code sample across all pages.
func Samples() []domain.CodeSample {
	return HomeSamples()
}
