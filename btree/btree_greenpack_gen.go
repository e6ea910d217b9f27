// Code generated by GREENPACK (github.com/glycerine/greenpack). DO NOT EDIT.

package btree

import (
	"github.com/glycerine/greenpack/msgp"
)

// DecodeMsg implements msgp.Decodable
// We treat empty fields as if we read a Nil from the wire.
func (z *Entry) DecodeMsg(dc *msgp.Reader) (err error) {

	var zgensym_bdc8a0bff5eb7593_0 uint32
	zgensym_bdc8a0bff5eb7593_0, err = dc.ReadArrayHeader()
	if err != nil {
		return
	}
	if zgensym_bdc8a0bff5eb7593_0 != 3 {
		err = msgp.ArrayError{Wanted: 3, Got: zgensym_bdc8a0bff5eb7593_0}
		return
	}
	z.Key, err = dc.ReadBytes(z.Key)
	if err != nil {
		return
	}
	{
		var zgensym_bdc8a0bff5eb7593_1 string
		zgensym_bdc8a0bff5eb7593_1, err = dc.ReadString()
		z.ValueId = ObjectId(zgensym_bdc8a0bff5eb7593_1)
	}
	if err != nil {
		return
	}
	{
		var zgensym_bdc8a0bff5eb7593_2 byte
		zgensym_bdc8a0bff5eb7593_2, err = dc.ReadByte()
		z.Priority = Priority(zgensym_bdc8a0bff5eb7593_2)
	}
	if err != nil {
		return
	}
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// EncodeMsg implements msgp.Encodable
func (z *Entry) EncodeMsg(en *msgp.Writer) (err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	// array header, size 3
	err = en.Append(0x93)
	if err != nil {
		return err
	}
	err = en.WriteBytes(z.Key)
	if err != nil {
		return
	}
	err = en.WriteString(string(z.ValueId))
	if err != nil {
		return
	}
	err = en.WriteByte(byte(z.Priority))
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *Entry) MarshalMsg(b []byte) (o []byte, err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	o = msgp.Require(b, z.Msgsize())
	// array header, size 3
	o = append(o, 0x93)
	o = msgp.AppendBytes(o, z.Key)
	o = msgp.AppendString(o, string(z.ValueId))
	o = msgp.AppendByte(o, byte(z.Priority))
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Entry) UnmarshalMsg(bts []byte) (o []byte, err error) {
	cfg := &msgp.RuntimeConfig{UnsafeZeroCopy: true}
	return z.UnmarshalMsgWithCfg(bts, cfg)
}
func (z *Entry) UnmarshalMsgWithCfg(bts []byte, cfg *msgp.RuntimeConfig) (o []byte, err error) {
	var nbs msgp.NilBitsStack
	nbs.Init(cfg)
	var sawTopNil bool
	if msgp.IsNil(bts) {
		sawTopNil = true
		bts = nbs.PushAlwaysNil(bts[1:])
	}

	var zgensym_bdc8a0bff5eb7593_3 uint32
	zgensym_bdc8a0bff5eb7593_3, bts, err = nbs.ReadArrayHeaderBytes(bts)
	if err != nil {
		return
	}
	if zgensym_bdc8a0bff5eb7593_3 != 3 {
		err = msgp.ArrayError{Wanted: 3, Got: zgensym_bdc8a0bff5eb7593_3}
		return
	}
	if nbs.AlwaysNil || msgp.IsNil(bts) {
		if !nbs.AlwaysNil {
			bts = bts[1:]
		}
		z.Key = z.Key[:0]
	} else {
		z.Key, bts, err = nbs.ReadBytesBytes(bts, z.Key)

		if err != nil {
			return
		}
	}
	if err != nil {
		return
	}
	{
		var zgensym_bdc8a0bff5eb7593_4 string
		zgensym_bdc8a0bff5eb7593_4, bts, err = nbs.ReadStringBytes(bts)

		if err != nil {
			return
		}
		z.ValueId = ObjectId(zgensym_bdc8a0bff5eb7593_4)
	}
	{
		var zgensym_bdc8a0bff5eb7593_5 byte
		zgensym_bdc8a0bff5eb7593_5, bts, err = nbs.ReadByteBytes(bts)

		if err != nil {
			return
		}
		z.Priority = Priority(zgensym_bdc8a0bff5eb7593_5)
	}
	if sawTopNil {
		bts = nbs.PopAlwaysNil()
	}
	o = bts
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Entry) Msgsize() (s int) {
	s = 1 + msgp.BytesPrefixSize + len(z.Key) + msgp.StringPrefixSize + len(string(z.ValueId)) + msgp.ByteSize
	return
}

// DecodeMsg implements msgp.Decodable
// We treat empty fields as if we read a Nil from the wire.
func (z *NodeData) DecodeMsg(dc *msgp.Reader) (err error) {

	var zgensym_bdc8a0bff5eb7593_8 uint32
	zgensym_bdc8a0bff5eb7593_8, err = dc.ReadArrayHeader()
	if err != nil {
		return
	}
	if zgensym_bdc8a0bff5eb7593_8 != 2 {
		err = msgp.ArrayError{Wanted: 2, Got: zgensym_bdc8a0bff5eb7593_8}
		return
	}
	var zgensym_bdc8a0bff5eb7593_9 uint32
	zgensym_bdc8a0bff5eb7593_9, err = dc.ReadArrayHeader()
	if err != nil {
		return
	}
	if cap(z.Entries) >= int(zgensym_bdc8a0bff5eb7593_9) {
		z.Entries = (z.Entries)[:zgensym_bdc8a0bff5eb7593_9]
	} else {
		z.Entries = make([]Entry, zgensym_bdc8a0bff5eb7593_9)
	}
	for zgensym_bdc8a0bff5eb7593_6 := range z.Entries {
		var zgensym_bdc8a0bff5eb7593_10 uint32
		zgensym_bdc8a0bff5eb7593_10, err = dc.ReadArrayHeader()
		if err != nil {
			return
		}
		if zgensym_bdc8a0bff5eb7593_10 != 3 {
			err = msgp.ArrayError{Wanted: 3, Got: zgensym_bdc8a0bff5eb7593_10}
			return
		}
		z.Entries[zgensym_bdc8a0bff5eb7593_6].Key, err = dc.ReadBytes(z.Entries[zgensym_bdc8a0bff5eb7593_6].Key)
		if err != nil {
			return
		}
		{
			var zgensym_bdc8a0bff5eb7593_11 string
			zgensym_bdc8a0bff5eb7593_11, err = dc.ReadString()
			z.Entries[zgensym_bdc8a0bff5eb7593_6].ValueId = ObjectId(zgensym_bdc8a0bff5eb7593_11)
		}
		if err != nil {
			return
		}
		{
			var zgensym_bdc8a0bff5eb7593_12 byte
			zgensym_bdc8a0bff5eb7593_12, err = dc.ReadByte()
			z.Entries[zgensym_bdc8a0bff5eb7593_6].Priority = Priority(zgensym_bdc8a0bff5eb7593_12)
		}
		if err != nil {
			return
		}
	}
	var zgensym_bdc8a0bff5eb7593_13 uint32
	zgensym_bdc8a0bff5eb7593_13, err = dc.ReadArrayHeader()
	if err != nil {
		return
	}
	if cap(z.Children) >= int(zgensym_bdc8a0bff5eb7593_13) {
		z.Children = (z.Children)[:zgensym_bdc8a0bff5eb7593_13]
	} else {
		z.Children = make([]ObjectId, zgensym_bdc8a0bff5eb7593_13)
	}
	for zgensym_bdc8a0bff5eb7593_7 := range z.Children {
		{
			var zgensym_bdc8a0bff5eb7593_14 string
			zgensym_bdc8a0bff5eb7593_14, err = dc.ReadString()
			z.Children[zgensym_bdc8a0bff5eb7593_7] = ObjectId(zgensym_bdc8a0bff5eb7593_14)
		}
		if err != nil {
			return
		}
	}
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// EncodeMsg implements msgp.Encodable
func (z *NodeData) EncodeMsg(en *msgp.Writer) (err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	// array header, size 2
	err = en.Append(0x92)
	if err != nil {
		return err
	}
	err = en.WriteArrayHeader(uint32(len(z.Entries)))
	if err != nil {
		return
	}
	for zgensym_bdc8a0bff5eb7593_6 := range z.Entries {
		// array header, size 3
		err = en.Append(0x93)
		if err != nil {
			return err
		}
		err = en.WriteBytes(z.Entries[zgensym_bdc8a0bff5eb7593_6].Key)
		if err != nil {
			return
		}
		err = en.WriteString(string(z.Entries[zgensym_bdc8a0bff5eb7593_6].ValueId))
		if err != nil {
			return
		}
		err = en.WriteByte(byte(z.Entries[zgensym_bdc8a0bff5eb7593_6].Priority))
		if err != nil {
			return
		}
	}
	err = en.WriteArrayHeader(uint32(len(z.Children)))
	if err != nil {
		return
	}
	for zgensym_bdc8a0bff5eb7593_7 := range z.Children {
		err = en.WriteString(string(z.Children[zgensym_bdc8a0bff5eb7593_7]))
		if err != nil {
			return
		}
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *NodeData) MarshalMsg(b []byte) (o []byte, err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	o = msgp.Require(b, z.Msgsize())
	// array header, size 2
	o = append(o, 0x92)
	o = msgp.AppendArrayHeader(o, uint32(len(z.Entries)))
	for zgensym_bdc8a0bff5eb7593_6 := range z.Entries {
		// array header, size 3
		o = append(o, 0x93)
		o = msgp.AppendBytes(o, z.Entries[zgensym_bdc8a0bff5eb7593_6].Key)
		o = msgp.AppendString(o, string(z.Entries[zgensym_bdc8a0bff5eb7593_6].ValueId))
		o = msgp.AppendByte(o, byte(z.Entries[zgensym_bdc8a0bff5eb7593_6].Priority))
	}
	o = msgp.AppendArrayHeader(o, uint32(len(z.Children)))
	for zgensym_bdc8a0bff5eb7593_7 := range z.Children {
		o = msgp.AppendString(o, string(z.Children[zgensym_bdc8a0bff5eb7593_7]))
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *NodeData) UnmarshalMsg(bts []byte) (o []byte, err error) {
	cfg := &msgp.RuntimeConfig{UnsafeZeroCopy: true}
	return z.UnmarshalMsgWithCfg(bts, cfg)
}
func (z *NodeData) UnmarshalMsgWithCfg(bts []byte, cfg *msgp.RuntimeConfig) (o []byte, err error) {
	var nbs msgp.NilBitsStack
	nbs.Init(cfg)
	var sawTopNil bool
	if msgp.IsNil(bts) {
		sawTopNil = true
		bts = nbs.PushAlwaysNil(bts[1:])
	}

	var zgensym_bdc8a0bff5eb7593_15 uint32
	zgensym_bdc8a0bff5eb7593_15, bts, err = nbs.ReadArrayHeaderBytes(bts)
	if err != nil {
		return
	}
	if zgensym_bdc8a0bff5eb7593_15 != 2 {
		err = msgp.ArrayError{Wanted: 2, Got: zgensym_bdc8a0bff5eb7593_15}
		return
	}
	if nbs.AlwaysNil {
		(z.Entries) = (z.Entries)[:0]
	} else {

		var zgensym_bdc8a0bff5eb7593_16 uint32
		zgensym_bdc8a0bff5eb7593_16, bts, err = nbs.ReadArrayHeaderBytes(bts)
		if err != nil {
			return
		}
		if cap(z.Entries) >= int(zgensym_bdc8a0bff5eb7593_16) {
			z.Entries = (z.Entries)[:zgensym_bdc8a0bff5eb7593_16]
		} else {
			z.Entries = make([]Entry, zgensym_bdc8a0bff5eb7593_16)
		}
		for zgensym_bdc8a0bff5eb7593_6 := range z.Entries {
			var zgensym_bdc8a0bff5eb7593_17 uint32
			zgensym_bdc8a0bff5eb7593_17, bts, err = nbs.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if zgensym_bdc8a0bff5eb7593_17 != 3 {
				err = msgp.ArrayError{Wanted: 3, Got: zgensym_bdc8a0bff5eb7593_17}
				return
			}
			if nbs.AlwaysNil || msgp.IsNil(bts) {
				if !nbs.AlwaysNil {
					bts = bts[1:]
				}
				z.Entries[zgensym_bdc8a0bff5eb7593_6].Key = z.Entries[zgensym_bdc8a0bff5eb7593_6].Key[:0]
			} else {
				z.Entries[zgensym_bdc8a0bff5eb7593_6].Key, bts, err = nbs.ReadBytesBytes(bts, z.Entries[zgensym_bdc8a0bff5eb7593_6].Key)

				if err != nil {
					return
				}
			}
			if err != nil {
				return
			}
			{
				var zgensym_bdc8a0bff5eb7593_18 string
				zgensym_bdc8a0bff5eb7593_18, bts, err = nbs.ReadStringBytes(bts)

				if err != nil {
					return
				}
				z.Entries[zgensym_bdc8a0bff5eb7593_6].ValueId = ObjectId(zgensym_bdc8a0bff5eb7593_18)
			}
			{
				var zgensym_bdc8a0bff5eb7593_19 byte
				zgensym_bdc8a0bff5eb7593_19, bts, err = nbs.ReadByteBytes(bts)

				if err != nil {
					return
				}
				z.Entries[zgensym_bdc8a0bff5eb7593_6].Priority = Priority(zgensym_bdc8a0bff5eb7593_19)
			}
		}
	}
	if nbs.AlwaysNil {
		(z.Children) = (z.Children)[:0]
	} else {

		var zgensym_bdc8a0bff5eb7593_20 uint32
		zgensym_bdc8a0bff5eb7593_20, bts, err = nbs.ReadArrayHeaderBytes(bts)
		if err != nil {
			return
		}
		if cap(z.Children) >= int(zgensym_bdc8a0bff5eb7593_20) {
			z.Children = (z.Children)[:zgensym_bdc8a0bff5eb7593_20]
		} else {
			z.Children = make([]ObjectId, zgensym_bdc8a0bff5eb7593_20)
		}
		for zgensym_bdc8a0bff5eb7593_7 := range z.Children {
			{
				var zgensym_bdc8a0bff5eb7593_21 string
				zgensym_bdc8a0bff5eb7593_21, bts, err = nbs.ReadStringBytes(bts)

				if err != nil {
					return
				}
				z.Children[zgensym_bdc8a0bff5eb7593_7] = ObjectId(zgensym_bdc8a0bff5eb7593_21)
			}
		}
	}
	if sawTopNil {
		bts = nbs.PopAlwaysNil()
	}
	o = bts
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *NodeData) Msgsize() (s int) {
	s = 1 + msgp.ArrayHeaderSize
	for zgensym_bdc8a0bff5eb7593_6 := range z.Entries {
		s += 1 + msgp.BytesPrefixSize + len(z.Entries[zgensym_bdc8a0bff5eb7593_6].Key) + msgp.StringPrefixSize + len(string(z.Entries[zgensym_bdc8a0bff5eb7593_6].ValueId)) + msgp.ByteSize
	}
	s += msgp.ArrayHeaderSize
	for zgensym_bdc8a0bff5eb7593_7 := range z.Children {
		s += msgp.StringPrefixSize + len(string(z.Children[zgensym_bdc8a0bff5eb7593_7]))
	}
	return
}

// DecodeMsg implements msgp.Decodable
// We treat empty fields as if we read a Nil from the wire.
func (z *ObjectId) DecodeMsg(dc *msgp.Reader) (err error) {

	{
		var zgensym_bdc8a0bff5eb7593_22 string
		zgensym_bdc8a0bff5eb7593_22, err = dc.ReadString()
		(*z) = ObjectId(zgensym_bdc8a0bff5eb7593_22)
	}
	if err != nil {
		return
	}
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// EncodeMsg implements msgp.Encodable
func (z ObjectId) EncodeMsg(en *msgp.Writer) (err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	err = en.WriteString(string(z))
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z ObjectId) MarshalMsg(b []byte) (o []byte, err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendString(o, string(z))
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *ObjectId) UnmarshalMsg(bts []byte) (o []byte, err error) {
	cfg := &msgp.RuntimeConfig{UnsafeZeroCopy: true}
	return z.UnmarshalMsgWithCfg(bts, cfg)
}
func (z *ObjectId) UnmarshalMsgWithCfg(bts []byte, cfg *msgp.RuntimeConfig) (o []byte, err error) {
	var nbs msgp.NilBitsStack
	nbs.Init(cfg)
	var sawTopNil bool
	if msgp.IsNil(bts) {
		sawTopNil = true
		bts = nbs.PushAlwaysNil(bts[1:])
	}

	{
		var zgensym_bdc8a0bff5eb7593_23 string
		zgensym_bdc8a0bff5eb7593_23, bts, err = nbs.ReadStringBytes(bts)

		if err != nil {
			return
		}
		(*z) = ObjectId(zgensym_bdc8a0bff5eb7593_23)
	}
	if sawTopNil {
		bts = nbs.PopAlwaysNil()
	}
	o = bts
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z ObjectId) Msgsize() (s int) {
	s = msgp.StringPrefixSize + len(string(z))
	return
}

// DecodeMsg implements msgp.Decodable
// We treat empty fields as if we read a Nil from the wire.
func (z *Priority) DecodeMsg(dc *msgp.Reader) (err error) {

	{
		var zgensym_bdc8a0bff5eb7593_24 byte
		zgensym_bdc8a0bff5eb7593_24, err = dc.ReadByte()
		(*z) = Priority(zgensym_bdc8a0bff5eb7593_24)
	}
	if err != nil {
		return
	}
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// EncodeMsg implements msgp.Encodable
func (z Priority) EncodeMsg(en *msgp.Writer) (err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	err = en.WriteByte(byte(z))
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z Priority) MarshalMsg(b []byte) (o []byte, err error) {
	if p, ok := interface{}(z).(msgp.PreSave); ok {
		p.PreSaveHook()
	}

	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendByte(o, byte(z))
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Priority) UnmarshalMsg(bts []byte) (o []byte, err error) {
	cfg := &msgp.RuntimeConfig{UnsafeZeroCopy: true}
	return z.UnmarshalMsgWithCfg(bts, cfg)
}
func (z *Priority) UnmarshalMsgWithCfg(bts []byte, cfg *msgp.RuntimeConfig) (o []byte, err error) {
	var nbs msgp.NilBitsStack
	nbs.Init(cfg)
	var sawTopNil bool
	if msgp.IsNil(bts) {
		sawTopNil = true
		bts = nbs.PushAlwaysNil(bts[1:])
	}

	{
		var zgensym_bdc8a0bff5eb7593_25 byte
		zgensym_bdc8a0bff5eb7593_25, bts, err = nbs.ReadByteBytes(bts)

		if err != nil {
			return
		}
		(*z) = Priority(zgensym_bdc8a0bff5eb7593_25)
	}
	if sawTopNil {
		bts = nbs.PopAlwaysNil()
	}
	o = bts
	if p, ok := interface{}(z).(msgp.PostLoad); ok {
		p.PostLoadHook()
	}

	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z Priority) Msgsize() (s int) {
	s = msgp.ByteSize
	return
}
