package domain

import (
	"strconv"
	"strings"
)

// AnyVersion matches every node version on set and delete.
const AnyVersion int32 = -1

type CreateMode int

const (
	CreatePersistent CreateMode = iota
	CreateEphemeral
	CreatePersistentSequential
	CreateEphemeralSequential
)

func (m CreateMode) String() string {
	switch m {
	case CreatePersistent:
		return "Persistent"
	case CreateEphemeral:
		return "Ephemeral"
	case CreatePersistentSequential:
		return "PersistentSequential"
	case CreateEphemeralSequential:
		return "EphemeralSequential"
	default:
		return "CreateMode(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m CreateMode) IsEphemeral() bool {
	return m == CreateEphemeral || m == CreateEphemeralSequential
}

func (m CreateMode) IsSequential() bool {
	return m == CreatePersistentSequential || m == CreateEphemeralSequential
}

// ResolveCreateMode picks the node mode from the optional create flags.
// The sequential flag upgrades whichever base mode was chosen.
func ResolveCreateMode(ephemeral, sequential bool) CreateMode {
	mode := CreatePersistent
	if ephemeral {
		mode = CreateEphemeral
	}
	if sequential {
		if mode == CreateEphemeral {
			return CreateEphemeralSequential
		}
		return CreatePersistentSequential
	}
	return mode
}

// ParseFlag is true only for the literal "true" in any letter case.
func ParseFlag(raw string) bool {
	return strings.ToLower(raw) == "true"
}

// ParseVersion falls back to AnyVersion when raw is not a 32-bit integer.
func ParseVersion(raw string) int32 {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return AnyVersion
	}
	return int32(v)
}

type Stat struct {
	Czxid          int64
	Mzxid          int64
	Ctime          int64
	Mtime          int64
	Version        int32
	Cversion       int32
	Aversion       int32
	EphemeralOwner int64
	DataLength     int32
	NumChildren    int32
	Pzxid          int64
}

// ACL is one access-control entry applied to created nodes.
type ACL struct {
	Perms  int32
	Scheme string
	ID     string
}

const PermAll int32 = 0x1f

// OpenACLUnsafe grants every permission to everyone.
var OpenACLUnsafe = []ACL{{Perms: PermAll, Scheme: "world", ID: "anyone"}}
