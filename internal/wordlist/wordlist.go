package wordlist

import (
	"bufio"
	"io"
	"os"

	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 单行最长 1MB
const maxLineSize = 1024 * 1024

// Load 读取按行分隔的单词文件
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open word list")
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read word list %s", path)
	}
	hdlog.Debug("word list loaded", zap.String("path", path), zap.Int("words", len(words)))
	return words, nil
}

// Read 每行一个单词，去掉行尾的 \n 或 \r\n，空行保留为空字符串
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	words := make([]string, 0, 1024)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
