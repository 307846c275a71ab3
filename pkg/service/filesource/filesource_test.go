package filesource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reclaimer/pkg/service/filesource"
)

func TestOSExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.csv")
	gt.NoError(t, os.WriteFile(path, []byte("a\n"), 0o600)).Required()

	src := filesource.New()
	gt.True(t, src.Exists(path))
	gt.False(t, src.Exists(filepath.Join(dir, "missing.csv")))
	gt.False(t, src.Exists(dir))
}

func TestOSReadLines(t *testing.T) {
	t.Run("keeps order and strips terminators", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "map.csv")
		content := "mannequin-user,mannequin-id,target-user\r\nmona_ghost,,monalisa\nhubot_ghost,M_1,hubot"
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()

		lines, err := filesource.New().ReadLines(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{
			"mannequin-user,mannequin-id,target-user",
			"mona_ghost,,monalisa",
			"hubot_ghost,M_1,hubot",
		}, lines)
	})

	t.Run("empty file gives no lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		gt.NoError(t, os.WriteFile(path, nil, 0o600)).Required()

		lines, err := filesource.New().ReadLines(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, len(lines))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := filesource.New().ReadLines(filepath.Join(t.TempDir(), "missing.csv"))
		gt.Error(t, err)
	})
}
