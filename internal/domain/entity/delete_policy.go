package entity

// DeletePolicy decides what happens to dependents when a destination is deleted.
type DeletePolicy string

const (
	// DeletePolicyOrphan leaves dependents in place with a dangling destinationId.
	DeletePolicyOrphan DeletePolicy = "orphan"
	// DeletePolicyCascade deletes every food spot, stay, local gem, activity and
	// package that points at the destination. It is best effort, not atomic.
	DeletePolicyCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy maps a configured value to a DeletePolicy, defaulting to orphan.
func ParseDeletePolicy(raw string) DeletePolicy {
	if DeletePolicy(raw) == DeletePolicyCascade {
		return DeletePolicyCascade
	}

	return DeletePolicyOrphan
}
