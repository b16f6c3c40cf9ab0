package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/radiofrance/robotkw/pkg/keyword"
	"github.com/radiofrance/robotkw/pkg/xmltree"
)

func newRecord(name, status, start, end string, children ...keyword.Record) keyword.Record {
	return keyword.Record{
		Name:      ptr.To(name),
		Status:    ptr.To(status),
		StartTime: ptr.To(start),
		EndTime:   ptr.To(end),
		Keywords:  children,
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected keyword.Record
	}{
		{
			name: "single keyword",
			input: `<?xml version="1.0" encoding="UTF-8"?>
<kw name="Login"><status status="PASS" starttime="20190423 13:11:24.102" endtime="20190423 13:11:27.807"/></kw>`,
			expected: newRecord("Login", "PASS", "20190423 13:11:24.102", "20190423 13:11:27.807"),
		},
		{
			name: "one keyword contains another keyword",
			input: `<?xml version="1.0" encoding="UTF-8"?>
<kw name="Logoff">
    <kw name="Close Browser">
        <status status="PASS" starttime="20190423 13:11:35.912" endtime="20190423 13:11:37.968"></status>
    </kw>
    <status status="PASS" starttime="20190423 13:11:35.693" endtime="20190423 13:11:37.970"></status>
</kw>`,
			expected: newRecord("Logoff", "PASS", "20190423 13:11:35.693", "20190423 13:11:37.970",
				newRecord("Close Browser", "PASS", "20190423 13:11:35.912", "20190423 13:11:37.968"),
			),
		},
		{
			name: "one keyword contains several keywords",
			input: `<?xml version="1.0" encoding="UTF-8"?>
<kw name="Logoff">
    <kw name="Close Browser">
        <status status="PASS" starttime="20190423 13:11:35.912" endtime="20190423 13:11:37.968"></status>
    </kw>
    <kw name="Log">
        <status status="FAIL" starttime="20190423 11:11:24.333" endtime="20190423 11:45:12.999"></status>
    </kw>
    <status status="PASS" starttime="20190423 13:11:35.693" endtime="20190423 13:11:37.970"></status>
</kw>`,
			expected: newRecord("Logoff", "PASS", "20190423 13:11:35.693", "20190423 13:11:37.970",
				newRecord("Close Browser", "PASS", "20190423 13:11:35.912", "20190423 13:11:37.968"),
				newRecord("Log", "FAIL", "20190423 11:11:24.333", "20190423 11:45:12.999"),
			),
		},
		{
			name: "one keyword contains nested keywords",
			input: `<?xml version="1.0" encoding="UTF-8"?>
<kw name="Logoff">
    <kw name="Close Browser">
        <kw name="Log">
            <status status="PASS" starttime="20190423 11:11:24.333" endtime="20190423 11:45:12.999"></status>
        </kw>
        <status status="FAIL" starttime="20190423 13:11:35.912" endtime="20190423 13:11:37.968"></status>
    </kw>
    <status status="PASS" starttime="20190423 13:11:35.693" endtime="20190423 13:11:37.970"></status>
</kw>`,
			expected: newRecord("Logoff", "PASS", "20190423 13:11:35.693", "20190423 13:11:37.970",
				newRecord("Close Browser", "FAIL", "20190423 13:11:35.912", "20190423 13:11:37.968",
					newRecord("Log", "PASS", "20190423 11:11:24.333", "20190423 11:45:12.999"),
				),
			),
		},
		{
			name: "other elements are ignored",
			input: `<kw name="Open Browser" library="SeleniumLibrary">
    <doc>Opens a new browser instance.</doc>
    <arguments><arg>https://example.org</arg><arg>chrome</arg></arguments>
    <msg timestamp="20190423 13:11:24.110" level="INFO">Opening browser 'chrome'</msg>
    <status status="PASS" starttime="20190423 13:11:24.102" endtime="20190423 13:11:27.807"></status>
</kw>`,
			expected: newRecord("Open Browser", "PASS", "20190423 13:11:24.102", "20190423 13:11:27.807"),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			node, err := xmltree.ParseString(test.input)
			require.NoError(t, err)

			actual, err := keyword.Extract(node)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestExtract_LeafKeywordHasNoKeywords(t *testing.T) {
	t.Parallel()

	node, err := xmltree.ParseString(`<kw name="Login"><status status="PASS"/></kw>`)
	require.NoError(t, err)

	actual, err := keyword.Extract(node)
	require.NoError(t, err)
	assert.Nil(t, actual.Keywords)
}

func TestExtract_MissingAttributes(t *testing.T) {
	t.Parallel()

	node, err := xmltree.ParseString(`<kw><status status="NOT RUN"/></kw>`)
	require.NoError(t, err)

	actual, err := keyword.Extract(node)
	require.NoError(t, err)

	expected := keyword.Record{Status: ptr.To(keyword.StatusNotRun)}
	assert.Equal(t, expected, actual)
}

func TestExtract_EmptyAttributesAreKept(t *testing.T) {
	t.Parallel()

	node, err := xmltree.ParseString(`<kw name=""><status status="PASS" starttime="" endtime="N/A"/></kw>`)
	require.NoError(t, err)

	actual, err := keyword.Extract(node)
	require.NoError(t, err)
	assert.Equal(t, newRecord("", "PASS", "", "N/A"), actual)
}

func TestExtract_FirstStatusWins(t *testing.T) {
	t.Parallel()

	node, err := xmltree.ParseString(`<kw name="Login">
    <status status="FAIL" starttime="1" endtime="2"/>
    <status status="PASS" starttime="3" endtime="4"/>
</kw>`)
	require.NoError(t, err)

	actual, err := keyword.Extract(node)
	require.NoError(t, err)
	assert.Equal(t, newRecord("Login", "FAIL", "1", "2"), actual)
}

func TestExtract_MissingStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		expectedError string
	}{
		{
			name:          "root keyword without status",
			input:         `<kw name="Login"></kw>`,
			expectedError: `"Login": keyword has no status element`,
		},
		{
			name: "status only found in a nested keyword",
			input: `<kw name="Logoff">
    <kw name="Close Browser"><status status="PASS"/></kw>
</kw>`,
			expectedError: `"Logoff": keyword has no status element`,
		},
		{
			name: "nested keyword without status",
			input: `<kw name="Logoff">
    <kw name="Close Browser"><kw name="Log"/><status status="PASS"/></kw>
    <status status="PASS"/>
</kw>`,
			expectedError: `"Logoff > Close Browser > Log": keyword has no status element`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			node, err := xmltree.ParseString(test.input)
			require.NoError(t, err)

			actual, err := keyword.Extract(node)
			require.ErrorIs(t, err, keyword.ErrMissingStatus)
			assert.EqualError(t, err, test.expectedError)
			assert.Equal(t, keyword.Record{}, actual)
		})
	}
}

func TestExtract_NilNode(t *testing.T) {
	t.Parallel()

	_, err := keyword.Extract(nil)
	require.ErrorIs(t, err, keyword.ErrNilNode)
}

func TestExtract_DoesNotMutateTree(t *testing.T) {
	t.Parallel()

	input := `<kw name="Logoff"><kw name="Log"><status status="PASS"/></kw><status status="PASS"/></kw>`
	node, err := xmltree.ParseString(input)
	require.NoError(t, err)
	pristine, err := xmltree.ParseString(input)
	require.NoError(t, err)

	first, err := keyword.Extract(node)
	require.NoError(t, err)
	second, err := keyword.Extract(node)
	require.NoError(t, err)

	assert.Equal(t, pristine, node)
	assert.Equal(t, first, second)
}
