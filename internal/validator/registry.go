package validator

// Registry holds the consistency rules in registration order.
type Registry struct {
	rules []Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a rule to the registry.
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// All returns all registered rules in registration order.
func (r *Registry) All() []Rule {
	return r.rules
}
