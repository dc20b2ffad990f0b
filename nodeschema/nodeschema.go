// Package nodeschema is the static, data-only description of the eight
// track-section node types and their ports/properties. It is consulted by
// the (out-of-scope) node-graph orchestration layer; within the simulation
// core only the builders import it, for DurationType.
package nodeschema

import "fmt"

// PortID identifies a node input or output port.
type PortID uint8

const (
	PortAnchor PortID = iota
	PortPath
	PortDuration
	PortRadius
	PortArc
	PortAxis
	PortLeadIn
	PortLeadOut
	PortInWeight
	PortOutWeight
	PortStart
	PortEnd
	PortPosition
	PortRotation
)

// PropertyID identifies a keyframe-curve property a node exposes.
type PropertyID uint8

const (
	PropertyRollSpeed PropertyID = iota
	PropertyNormalForce
	PropertyLateralForce
	PropertyPitchSpeed
	PropertyYawSpeed
	PropertyDrivenVelocity
	PropertyHeartOffset
	PropertyFriction
	PropertyResistance
	PropertyTrackStyle
)

// NodeType enumerates the eight track-section node types.
type NodeType uint8

const (
	NodeForce NodeType = iota
	NodeGeometric
	NodeCurved
	NodeCopyPath
	NodeBridge
	NodeAnchor
	NodeReverse
	NodeReversePath
	nodeTypeCount
)

// DurationType selects whether a builder iterates by time or by arc length.
type DurationType uint8

const (
	DurationTime DurationType = iota
	DurationDistance
)

// IterationConfig is the (duration, duration_type) pair shared by Force and
// Geometric builders.
type IterationConfig struct {
	Duration     float32
	DurationType DurationType
}

var inputPorts = [nodeTypeCount][]PortID{
	NodeForce:       {PortAnchor, PortDuration},
	NodeGeometric:   {PortAnchor, PortDuration},
	NodeCurved:      {PortAnchor, PortRadius, PortArc, PortAxis, PortLeadIn, PortLeadOut},
	NodeCopyPath:    {PortAnchor, PortPath, PortStart, PortEnd},
	NodeBridge:      {PortAnchor, PortInWeight, PortOutWeight},
	NodeAnchor:      {PortPosition, PortRotation},
	NodeReverse:     {PortAnchor},
	NodeReversePath: {PortPath},
}

var outputPorts = [nodeTypeCount][]PortID{
	NodeForce:       {PortAnchor, PortPath},
	NodeGeometric:   {PortAnchor, PortPath},
	NodeCurved:      {PortAnchor, PortPath},
	NodeCopyPath:    {PortAnchor, PortPath},
	NodeBridge:      {PortAnchor, PortPath},
	NodeAnchor:      {PortAnchor},
	NodeReverse:     {PortAnchor},
	NodeReversePath: {PortPath},
}

var properties = [nodeTypeCount][]PropertyID{
	NodeForce: {
		PropertyRollSpeed, PropertyNormalForce, PropertyLateralForce,
		PropertyDrivenVelocity, PropertyHeartOffset, PropertyFriction, PropertyResistance,
	},
	NodeGeometric: {
		PropertyRollSpeed, PropertyPitchSpeed, PropertyYawSpeed,
		PropertyDrivenVelocity, PropertyHeartOffset, PropertyFriction, PropertyResistance,
	},
	NodeCurved: {
		PropertyRollSpeed, PropertyDrivenVelocity, PropertyHeartOffset, PropertyFriction, PropertyResistance,
	},
	NodeCopyPath: {
		PropertyDrivenVelocity, PropertyHeartOffset, PropertyFriction, PropertyResistance,
	},
	NodeBridge: {
		PropertyDrivenVelocity, PropertyHeartOffset, PropertyFriction, PropertyResistance, PropertyTrackStyle,
	},
	NodeAnchor:      {},
	NodeReverse:     {},
	NodeReversePath: {},
}

// InputCount returns the number of input ports node has.
func InputCount(node NodeType) int { return len(inputPorts[node]) }

// Input returns node's index'th input port. The second return is false when
// index is out of range.
func Input(node NodeType, index int) (PortID, bool) {
	ports := inputPorts[node]
	if index < 0 || index >= len(ports) {
		return 0, false
	}
	return ports[index], true
}

// OutputCount returns the number of output ports node has.
func OutputCount(node NodeType) int { return len(outputPorts[node]) }

// Output returns node's index'th output port.
func Output(node NodeType, index int) (PortID, bool) {
	ports := outputPorts[node]
	if index < 0 || index >= len(ports) {
		return 0, false
	}
	return ports[index], true
}

// PropertyCount returns the number of keyframe-curve properties node exposes.
func PropertyCount(node NodeType) int { return len(properties[node]) }

// Property returns node's index'th property.
func Property(node NodeType, index int) (PropertyID, bool) {
	props := properties[node]
	if index < 0 || index >= len(props) {
		return 0, false
	}
	return props[index], true
}

// PropertyIndex returns property's ordinal position within node's property
// list, or an error if node does not expose that property.
func PropertyIndex(property PropertyID, node NodeType) (int, error) {
	for i, p := range properties[node] {
		if p == property {
			return i, nil
		}
	}
	return -1, fmt.Errorf("nodeschema: node type %d has no property %d", node, property)
}

// PropertyFromIndex is the inverse of PropertyIndex.
func PropertyFromIndex(index int, node NodeType) (PropertyID, bool) {
	return Property(node, index)
}
