package hashfn

import (
	"strings"

	hderrors "github.com/hashdist/hashdist/internal/errors"
	"github.com/pkg/errors"
)

// Func 把字符串映射为整数，同一输入总是返回同一结果
type Func func(key string) int64

type entry struct {
	name string
	fn   Func
}

// 注册顺序即展示顺序
var registry = []entry{
	{name: "loselose", fn: LoseLose},
	{name: "djb2", fn: DJB2},
	{name: "sdbm", fn: SDBM},
	{name: "fnv1a", fn: FNV1a},
	{name: "jenkins", fn: Jenkins},
	{name: "myhash", fn: MyHash},
}

// UnknownHashFunctionError 请求的哈希函数不存在
type UnknownHashFunctionError struct {
	Name      string
	Available []string
}

func (e *UnknownHashFunctionError) Error() string {
	return "unknown hash function: " + e.Name + " (available: " + strings.Join(e.Available, ", ") + ")"
}

func (e *UnknownHashFunctionError) Unwrap() error {
	return hderrors.ErrUnknownHashFunction
}

// Names 返回所有已注册的哈希函数名
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	return names
}

// Lookup 通过名字查找哈希函数
func Lookup(name string) (Func, error) {
	for _, e := range registry {
		if e.name == name {
			return e.fn, nil
		}
	}
	return nil, errors.WithStack(&UnknownHashFunctionError{Name: name, Available: Names()})
}

func Must(name string) Func {
	fn, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return fn
}
