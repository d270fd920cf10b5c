package ring

// Marshaller is implemented by each of the four concrete request
// codecs. WriteRequest returns the request's id on success, so callers
// can track completions without decoding the slot they just wrote.
type Marshaller interface {
	SlotSize() int
	WriteRequest(buf []byte, req Request) (id uint64, err error)
	ReadRequest(buf []byte) (Request, error)
}

// Direct64 marshals direct-form requests under the 64-bit ABI.
type Direct64 struct{}

func (Direct64) SlotSize() int { return abi64.slotSize() }
func (Direct64) WriteRequest(buf []byte, req Request) (uint64, error) {
	return abi64.writeDirect(buf, req)
}
func (Direct64) ReadRequest(buf []byte) (Request, error) { return abi64.readRequest(buf) }

// Indirect64 marshals indirect-form requests under the 64-bit ABI.
type Indirect64 struct{}

func (Indirect64) SlotSize() int { return abi64.slotSize() }
func (Indirect64) WriteRequest(buf []byte, req Request) (uint64, error) {
	return abi64.writeIndirect(buf, req)
}
func (Indirect64) ReadRequest(buf []byte) (Request, error) { return abi64.readRequest(buf) }

// Direct32 marshals direct-form requests under the 32-bit ABI.
type Direct32 struct{}

func (Direct32) SlotSize() int { return abi32.slotSize() }
func (Direct32) WriteRequest(buf []byte, req Request) (uint64, error) {
	return abi32.writeDirect(buf, req)
}
func (Direct32) ReadRequest(buf []byte) (Request, error) { return abi32.readRequest(buf) }

// Indirect32 marshals indirect-form requests under the 32-bit ABI.
type Indirect32 struct{}

func (Indirect32) SlotSize() int { return abi32.slotSize() }
func (Indirect32) WriteRequest(buf []byte, req Request) (uint64, error) {
	return abi32.writeIndirect(buf, req)
}
func (Indirect32) ReadRequest(buf []byte) (Request, error) { return abi32.readRequest(buf) }

// DirectMarshallerFor64Bit, IndirectMarshallerFor64Bit,
// DirectMarshallerFor32Bit and IndirectMarshallerFor32Bit return the
// marshaller for one ABI width and request shape. No function here maps a
// Protocol value to a marshaller: the caller picks one by the negotiated
// width, resolving Native to the local platform's concrete ABI first.
func DirectMarshallerFor64Bit() Marshaller   { return Direct64{} }
func IndirectMarshallerFor64Bit() Marshaller { return Indirect64{} }
func DirectMarshallerFor32Bit() Marshaller   { return Direct32{} }
func IndirectMarshallerFor32Bit() Marshaller { return Indirect32{} }
