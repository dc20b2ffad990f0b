package nodeschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputCounts(t *testing.T) {
	assert.Equal(t, 2, InputCount(NodeForce))
	assert.Equal(t, 2, InputCount(NodeGeometric))
	assert.Equal(t, 6, InputCount(NodeCurved))
	assert.Equal(t, 4, InputCount(NodeCopyPath))
	assert.Equal(t, 3, InputCount(NodeBridge))
	assert.Equal(t, 2, InputCount(NodeAnchor))
	assert.Equal(t, 1, InputCount(NodeReverse))
	assert.Equal(t, 1, InputCount(NodeReversePath))
}

func TestOutputCounts(t *testing.T) {
	assert.Equal(t, 2, OutputCount(NodeForce))
	assert.Equal(t, 1, OutputCount(NodeAnchor))
	assert.Equal(t, 1, OutputCount(NodeReversePath))
}

func TestPropertyCounts(t *testing.T) {
	assert.Equal(t, 7, PropertyCount(NodeForce))
	assert.Equal(t, 7, PropertyCount(NodeGeometric))
	assert.Equal(t, 5, PropertyCount(NodeCurved))
	assert.Equal(t, 4, PropertyCount(NodeCopyPath))
	assert.Equal(t, 5, PropertyCount(NodeBridge))
	assert.Equal(t, 0, PropertyCount(NodeAnchor))
}

func TestCurvedInputs(t *testing.T) {
	want := []PortID{PortAnchor, PortRadius, PortArc, PortAxis, PortLeadIn, PortLeadOut}
	for i, w := range want {
		got, ok := Input(NodeCurved, i)
		assert.True(t, ok)
		assert.Equal(t, w, got)
	}
	_, ok := Input(NodeCurved, 6)
	assert.False(t, ok)
}

func TestBridgePropertyIncludesTrackStyleAtFour(t *testing.T) {
	p, ok := Property(NodeBridge, 4)
	assert.True(t, ok)
	assert.Equal(t, PropertyTrackStyle, p)
}

func TestPropertyIndexRoundTrip(t *testing.T) {
	cases := []struct {
		prop  PropertyID
		node  NodeType
		index int
	}{
		{PropertyRollSpeed, NodeForce, 0},
		{PropertyNormalForce, NodeForce, 1},
		{PropertyPitchSpeed, NodeGeometric, 1},
		{PropertyYawSpeed, NodeGeometric, 2},
		{PropertyDrivenVelocity, NodeCurved, 1},
		{PropertyTrackStyle, NodeBridge, 4},
	}
	for _, c := range cases {
		idx, err := PropertyIndex(c.prop, c.node)
		assert.NoError(t, err)
		assert.Equal(t, c.index, idx)

		recovered, ok := PropertyFromIndex(idx, c.node)
		assert.True(t, ok)
		assert.Equal(t, c.prop, recovered)
	}
}

func TestPropertyIndexInvalid(t *testing.T) {
	_, err := PropertyIndex(PropertyNormalForce, NodeGeometric)
	assert.Error(t, err)

	_, err = PropertyIndex(PropertyTrackStyle, NodeForce)
	assert.Error(t, err)

	_, ok := PropertyFromIndex(99, NodeForce)
	assert.False(t, ok)
}

func TestAllNodeTypesComplete(t *testing.T) {
	nodes := []NodeType{NodeForce, NodeGeometric, NodeCurved, NodeCopyPath, NodeBridge, NodeAnchor, NodeReverse, NodeReversePath}
	for _, n := range nodes {
		for i := 0; i < InputCount(n); i++ {
			_, ok := Input(n, i)
			assert.True(t, ok)
		}
		_, ok := Input(n, InputCount(n))
		assert.False(t, ok)

		for i := 0; i < PropertyCount(n); i++ {
			_, ok := Property(n, i)
			assert.True(t, ok)
		}
		_, ok = Property(n, PropertyCount(n))
		assert.False(t, ok)
	}
}
