package plainxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextXMLParser(t *testing.T) {
	p := &TextXMLParser{}

	t.Run("chardata_only", func(t *testing.T) {
		out, err := p.ParseXml([]byte(`<?xml version="1.0"?>
<!-- comment words -->
<words><w lang="en">test</w><w>testament</w>
  <group><w>testing</w></group>
</words>`))
		require.NoError(t, err)
		assert.Equal(t, "test testament testing", string(out))
	})

	t.Run("declared_charset", func(t *testing.T) {
		out, err := p.ParseXml([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><w>caf\xe9</w>"))
		require.NoError(t, err)
		assert.Equal(t, "café", string(out))
	})
}
