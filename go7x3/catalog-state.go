package go7x3

import (
	proto "github.com/gogo/protobuf/proto"
)

const (
	CatalogMajorVers = 2025
	CatalogMinorVers = 1
)

// CatalogState is the persisted header of a Catalog.
//
// It is encoded with gogo/protobuf via struct tags (no generated marshal code), so fields may be added as long as
// tag numbers are never reused.
type CatalogState struct {
	MajorVers int32    `protobuf:"varint,1,opt,name=MajorVers,proto3" json:"MajorVers,omitempty"`
	MinorVers int32    `protobuf:"varint,2,opt,name=MinorVers,proto3" json:"MinorVers,omitempty"`
	Origin    []string `protobuf:"bytes,3,rep,name=Origin,proto3" json:"Origin,omitempty"`
	NumPerms  uint64   `protobuf:"varint,4,opt,name=NumPerms,proto3" json:"NumPerms,omitempty"`
	NumAutos  uint64   `protobuf:"varint,5,opt,name=NumAutos,proto3" json:"NumAutos,omitempty"`
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}

// NumEntries returns the entry count for the given kind.
func (m *CatalogState) NumEntries(kind OutputKind) uint64 {
	switch kind {
	case Permutations:
		return m.NumPerms
	case Automorphisms:
		return m.NumAutos
	}
	return 0
}

// IncEntries bumps the entry count for the given kind.
func (m *CatalogState) IncEntries(kind OutputKind) {
	switch kind {
	case Permutations:
		m.NumPerms++
	case Automorphisms:
		m.NumAutos++
	}
}

// EncodeState appends the protobuf encoding of this state to out.
func (m *CatalogState) EncodeState(out []byte) ([]byte, error) {
	buf, err := proto.Marshal(m)
	if err != nil {
		return out, err
	}
	return append(out, buf...), nil
}

// DecodeState resets this state and reads it from the given protobuf encoding.
func (m *CatalogState) DecodeState(in []byte) error {
	return proto.Unmarshal(in, m)
}
