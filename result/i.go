package result

type Result struct {
	ID         uint64   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	K          int      `json:"k" yaml:"k"`
	Shares     []string `json:"shares,omitempty" yaml:"shares,omitempty"`
	Secret     string   `json:"secret" yaml:"secret"`
	Polynomial string   `json:"polynomial" yaml:"polynomial"`
	CreateAt   int64    `json:"create_at" yaml:"create_at"`
}

// Storage keeps recovered secrets. FindByName returns the latest result added under a name.
type Storage interface {
	Add(r *Result) (id uint64, err error)
	Get(id uint64) (*Result, error)
	FindByName(name string) (*Result, error)
	List() ([]*Result, error)
	Del(id uint64) error
}
