package datagrid

const (
	// DefaultPageSize is the page size used when the request does not
	// specify one.
	DefaultPageSize = 50

	// DefaultMaxPageSize is the maximum page size allowed by default.
	// This protects against resource exhaustion from unreasonably large
	// page requests.
	DefaultMaxPageSize = 1000
)

// PageRequest identifies one page in offset mode. Page numbers are 1-based;
// out-of-range values are clamped, never rejected.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// EffectivePage returns the 1-based page number, clamping anything below 1.
func (r PageRequest) EffectivePage() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

// OffsetFor computes the row offset for this page at the given effective
// page size: (page-1) * pageSize.
func (r PageRequest) OffsetFor(pageSize int) int {
	return (r.EffectivePage() - 1) * pageSize
}

// PageConfig holds page size policy: the default applied when a request
// carries no size, and the cap applied when it carries too large a one.
// Requests exceeding MaxSize are capped, not rejected.
type PageConfig struct {
	DefaultSize int
	MaxSize     int
}

// NewPageConfig creates a PageConfig with the package defaults.
func NewPageConfig() *PageConfig {
	return &PageConfig{
		DefaultSize: DefaultPageSize,
		MaxSize:     DefaultMaxPageSize,
	}
}

// EffectiveSize returns the page size to use for a requested size, applying
// the default and the cap.
func (c *PageConfig) EffectiveSize(requested int) int {
	if c == nil {
		c = NewPageConfig()
	}

	defaultSize := c.DefaultSize
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	if requested <= 0 {
		return defaultSize
	}

	if requested > maxSize {
		return maxSize
	}

	return requested
}

// PaginateOption configures page size limits for an executor.
//
// Example:
//
//	executor := offset.New(fetcher, counts,
//	    datagrid.WithMaxSize(100),
//	    datagrid.WithDefaultSize(25),
//	)
type PaginateOption func(*PageConfig)

// WithMaxSize sets the maximum page size. Requests exceeding it are capped.
func WithMaxSize(size int) PaginateOption {
	return func(c *PageConfig) {
		if size > 0 {
			c.MaxSize = size
		}
	}
}

// WithDefaultSize sets the page size used when the request does not specify
// one.
func WithDefaultSize(size int) PaginateOption {
	return func(c *PageConfig) {
		if size > 0 {
			c.DefaultSize = size
		}
	}
}

// ApplyPaginateOptions builds a PageConfig from functional options.
// This is a helper shared by the executors.
func ApplyPaginateOptions(opts ...PaginateOption) *PageConfig {
	cfg := NewPageConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
