package minecraft

// Rule is a library rule. It decides if a library should be used on a specific OS.
type Rule struct {
	Action string `json:"action"`
	OS     OS     `json:"os"`
}

// OS defines the os a [Rule] applies to. An empty name matches every os.
type OS struct {
	Name string `json:"name"`
}

// Rules is an ordered list of library rules
type Rules []Rule

// Allows reports if the rules allow a library on the given os.
// Every known rule overwrites the result of the previous one, so the last
// rule decides. No rules at all means the library is allowed.
func (r Rules) Allows(os string) bool {
	allowed := len(r) == 0
	for _, rule := range r {
		switch rule.Action {
		case "allow":
			allowed = rule.OS.Name == "" || rule.OS.Name == os
		case "disallow":
			allowed = rule.OS.Name != "" && rule.OS.Name != os
		default:
			// unknown action, ignore it
		}
	}
	return allowed
}
