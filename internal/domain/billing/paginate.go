package billing

// PageCount devuelve el número de páginas necesarias para total elementos:
// ceil(total / pageSize). Cero para una lista vacía.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate devuelve la página pedida (índice 1-based) de tamaño fijo.
// Un índice fuera de [1, PageCount] produce una página vacía, sin error;
// el caller decide si recorta la navegación o vuelve a la página 1.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
