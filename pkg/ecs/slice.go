package ecs

// SwapRemove 用末尾元素覆盖下标 i 的元素并弹出末尾
//
// O(1) 删除，不保持顺序。配合倒序遍历使用时不会跳过或重复访问元素：
// 被换到 i 的元素来自已经访问过的尾部。
// 弹出的末尾槽位会被清零，避免底层数组继续持有已归还对象的引用。
func SwapRemove[T any](s []T, i int) []T {
	last := len(s) - 1
	s[i] = s[last]
	var zero T
	s[last] = zero
	return s[:last]
}

// RemoveIf 倒序遍历切片，对满足 pred 的元素调用 release 后 swap-remove
func RemoveIf[T any](s []T, pred func(T) bool, release func(T)) []T {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			if release != nil {
				release(s[i])
			}
			s = SwapRemove(s, i)
		}
	}
	return s
}
