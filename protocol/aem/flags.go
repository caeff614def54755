package aem

// AcquireEntityFlags distinguishes an ACQUIRE_ENTITY command/response from
// its release counterpart (IEEE 1722.1 Table 7.128); both share the same
// AemCommandType, disambiguated by this flags field.
type AcquireEntityFlags uint32

const (
	AcquireFlagsNone       AcquireEntityFlags = 0
	AcquireFlagsPersistent AcquireEntityFlags = 1 << 0
	AcquireFlagsRelease    AcquireEntityFlags = 1 << 31
)

func (f AcquireEntityFlags) IsRelease() bool { return f&AcquireFlagsRelease == AcquireFlagsRelease }

// LockEntityFlags distinguishes a LOCK_ENTITY command/response from its
// unlock counterpart (IEEE 1722.1 Table 7.129).
type LockEntityFlags uint32

const (
	LockFlagsNone   LockEntityFlags = 0
	LockFlagsUnlock LockEntityFlags = 1 << 31
)

func (f LockEntityFlags) IsUnlock() bool { return f&LockFlagsUnlock == LockFlagsUnlock }
