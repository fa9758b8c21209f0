package filters

// Paginated wraps one page of mapped results together with paging metadata.
// It is a pure transform over a repository page result; TotalPages is
// ceil(TotalElements / PageSize).
type Paginated struct {
	Data          interface{} `json:"data"`
	CurrentPage   int         `json:"currentPage"`
	PageSize      int         `json:"pageSize"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}

func NewPaginated(data interface{}, totalElements int64, page, pageSize int) *Paginated {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalElements + int64(pageSize) - 1) / int64(pageSize))
	}

	return &Paginated{
		Data:          data,
		CurrentPage:   page,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
