package register

import "sync"

// 函数注册表：各包在 init 里挂装配回调，容器构造时按 key 统一回放
// 类型参数约束回调签名，取出时类型不符的条目会被跳过
var (
	mu       sync.Mutex
	handlers = make(map[any][]any)
)

type Handler[T any] func(T)

func RegisterFunc[T any](key any, handler Handler[T]) {
	mu.Lock()
	defer mu.Unlock()
	handlers[key] = append(handlers[key], handler)
}

func ResolveFuncHandlers[T any](key any) []Handler[T] {
	mu.Lock()
	defer mu.Unlock()

	var result []Handler[T]
	for _, v := range handlers[key] {
		if h, ok := v.(Handler[T]); ok {
			result = append(result, h)
		}
	}
	return result
}
