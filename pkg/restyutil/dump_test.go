package restyutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mutex    sync.Mutex
	messages map[string]string
}

func (m *memoryOutput) Write(id string, contents string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.messages[id] = contents
}

func TestDump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Case", "01-CA-123456")
		fmt.Fprint(w, "<html>case</html>")
	}))
	defer server.Close()

	output := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	Dump(client, output)

	_, err := client.R().Get(server.URL + "/case/01-CA-123456")
	require.NoError(t, err)
	_, err = client.R().Get(server.URL + "/case/02-RC-000777")
	require.NoError(t, err)

	require.Len(t, output.messages, 2)
	first := output.messages["1"]
	require.Contains(t, first, "GET "+server.URL+"/case/01-CA-123456")
	require.Contains(t, first, "X-Case: 01-CA-123456")
	require.Contains(t, first, "<html>case</html>")
	require.Contains(t, output.messages["2"], "/case/02-RC-000777")
}

func TestDumpNilOutput(t *testing.T) {
	client := resty.New()
	Dump(client, nil)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale"), []byte("old"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	output.Write("1", "contents")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))
}
