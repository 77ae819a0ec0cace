package contract

import (
	"encoding/binary"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

// Param is a single contract parameter in its wire encoding.
type Param []byte

// Bytes encodes b as a length prefixed byte string.
func Bytes(b []byte) Param {
	p := make(Param, 0, 4+len(b))
	p = binary.LittleEndian.AppendUint32(p, uint32(len(b)))
	return append(p, b...)
}

// EncodeParams concatenates params in order.
func EncodeParams(params ...Param) []byte {
	var n int
	for _, p := range params {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range params {
		buf = append(buf, p...)
	}
	return buf
}

// Invocation describes a call of a contract function.
type Invocation struct {
	Function   string
	Amount     uint64
	GasLimit   uint64
	GasDeposit uint64
	Params     []Param
}

// EncodePayload builds the payload of a transfer transaction that invokes a contract:
//
//	recipient[32] | amount u64 | gas_limit u64 | gas_deposit u64 |
//	len(func) u32 | func | len(params) u32 | params
func EncodePayload(recipient types.AccountID, inv Invocation) []byte {
	params := EncodeParams(inv.Params...)
	buf := make([]byte, 0, types.AccountIDLength+3*8+4+len(inv.Function)+4+len(params))
	buf = append(buf, recipient[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, inv.Amount)
	buf = binary.LittleEndian.AppendUint64(buf, inv.GasLimit)
	buf = binary.LittleEndian.AppendUint64(buf, inv.GasDeposit)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(inv.Function)))
	buf = append(buf, inv.Function...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(params)))
	return append(buf, params...)
}
