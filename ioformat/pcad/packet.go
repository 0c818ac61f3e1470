/*
Package pcad reads and writes plasmidcore's own native binary save format:
two magic start bytes, then a sequence of packets (start byte, big-endian
uint32 payload length, packet type byte, payload), each packet carrying one
piece of a Construct. The sequence packet is 2-bit packed; the portions
and path-loaded packets carry raw bytes; every other packet's payload is
gob-encoded, mirroring the original_source's own
packet-per-field split (bincode there, gob here -- this module's nearest
ecosystem equivalent, already exercised via encoding/gob the way several
pack repos persist intermediate structs).

Grounded on original_source/src/file_io/pcad.rs (packet framing, packet
type table, "order doesn't matter for loading") and save.rs's
serialize_seq_bin/deser_seq_bin (2-bit sequence packing, first 4 bytes are
sequence length).
*/
package pcad

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/genomancer/plasmidcore/feature"
)

type packetType byte

const (
	packetSequence          packetType = 0
	packetFeatures          packetType = 1
	packetPrimers           packetType = 2
	packetMetadata          packetType = 3
	packetIonConcentrations packetType = 6
	packetPortions          packetType = 7
	packetPathLoaded        packetType = 10
	packetTopology          packetType = 11
)

var startBytes = [2]byte{0x1f, 0xb2}

const packetStartByte = 0x11
const packetOverhead = 6 // start byte + 4-byte length + type byte

type packet struct {
	Type    packetType
	Payload []byte
}

func writePacket(w io.Writer, t packetType, payload []byte) error {
	if _, err := w.Write([]byte{packetStartByte}); err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(t)}); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

func readPackets(r io.Reader) ([]packet, error) {
	br := bufio.NewReader(r)
	var magic [2]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("pcad: read start bytes: %w", err)
	}
	if magic != startBytes {
		return nil, fmt.Errorf("pcad: invalid start bytes")
	}

	var packets []packet
	for {
		startByte, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pcad: read packet start: %w", err)
		}
		if startByte != packetStartByte {
			return nil, fmt.Errorf("pcad: invalid packet start byte %x", startByte)
		}
		var lenBuf [4]byte
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("pcad: read packet length: %w", err)
		}
		length := binary.BigEndian.Uint32(lenBuf[:])
		typeByte, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("pcad: read packet type: %w", err)
		}
		payload := make([]byte, length)
		if _, err := io.ReadFull(br, payload); err != nil {
			return nil, fmt.Errorf("pcad: read packet payload: %w", err)
		}
		packets = append(packets, packet{Type: packetType(typeByte), Payload: payload})
	}
	return packets, nil
}

// Parse decodes a plasmidcore native (.pcad) byte stream into a Construct.
// Packet order is insignificant; any packet type we don't recognize is
// skipped (forward compatibility with future packet types).
func Parse(r io.Reader) (feature.Construct, error) {
	packets, err := readPackets(r)
	if err != nil {
		return feature.Construct{}, err
	}

	c := feature.New()
	for _, p := range packets {
		switch p.Type {
		case packetSequence:
			s, err := unpackSeq(p.Payload)
			if err != nil {
				return feature.Construct{}, fmt.Errorf("pcad: %w", err)
			}
			c.Seq = s
		case packetFeatures:
			if err := gobDecode(p.Payload, &c.Features); err != nil {
				return feature.Construct{}, fmt.Errorf("pcad: decode features: %w", err)
			}
		case packetPrimers:
			if err := gobDecode(p.Payload, &c.Primers); err != nil {
				return feature.Construct{}, fmt.Errorf("pcad: decode primers: %w", err)
			}
		case packetMetadata:
			if err := gobDecode(p.Payload, &c.Metadata); err != nil {
				return feature.Construct{}, fmt.Errorf("pcad: decode metadata: %w", err)
			}
		case packetTopology:
			if err := gobDecode(p.Payload, &c.Topology); err != nil {
				return feature.Construct{}, fmt.Errorf("pcad: decode topology: %w", err)
			}
		case packetIonConcentrations:
			if err := gobDecode(p.Payload, &c.Ions); err != nil {
				return feature.Construct{}, fmt.Errorf("pcad: decode ion concentrations: %w", err)
			}
		case packetPortions:
			c.Portions = append([]byte(nil), p.Payload...)
		case packetPathLoaded:
			c.PathLoaded = string(p.Payload)
		}
	}
	return c, nil
}

// Write encodes c as a plasmidcore native (.pcad) byte stream.
func Write(w io.Writer, c feature.Construct) error {
	if _, err := w.Write(startBytes[:]); err != nil {
		return err
	}

	seqPayload := packSeq(c.Seq)
	if err := writePacket(w, packetSequence, seqPayload); err != nil {
		return err
	}

	featuresPayload, err := gobEncode(c.Features)
	if err != nil {
		return fmt.Errorf("pcad: encode features: %w", err)
	}
	if err := writePacket(w, packetFeatures, featuresPayload); err != nil {
		return err
	}

	persisted := make([]feature.Primer, len(c.Primers))
	for i, p := range c.Primers {
		persisted[i] = feature.Primer{Sequence: p.Sequence, Name: p.Name, Description: p.Description}
	}
	primersPayload, err := gobEncode(persisted)
	if err != nil {
		return fmt.Errorf("pcad: encode primers: %w", err)
	}
	if err := writePacket(w, packetPrimers, primersPayload); err != nil {
		return err
	}

	metadataPayload, err := gobEncode(c.Metadata)
	if err != nil {
		return fmt.Errorf("pcad: encode metadata: %w", err)
	}
	if err := writePacket(w, packetMetadata, metadataPayload); err != nil {
		return err
	}

	topologyPayload, err := gobEncode(c.Topology)
	if err != nil {
		return fmt.Errorf("pcad: encode topology: %w", err)
	}
	if err := writePacket(w, packetTopology, topologyPayload); err != nil {
		return err
	}

	ionsPayload, err := gobEncode(c.Ions)
	if err != nil {
		return fmt.Errorf("pcad: encode ion concentrations: %w", err)
	}
	if err := writePacket(w, packetIonConcentrations, ionsPayload); err != nil {
		return err
	}

	if err := writePacket(w, packetPortions, c.Portions); err != nil {
		return err
	}
	if err := writePacket(w, packetPathLoaded, []byte(c.PathLoaded)); err != nil {
		return err
	}
	return nil
}

func gobEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
