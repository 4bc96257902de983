// Package review schedules flashcard reviews with a Fibonacci-like level progression.
package review

// Levels returns the first n values of the progression: 0, 1, 1, 2, 3, 5, 8, ...
func Levels(n int) []int {
	if n <= 0 {
		return nil
	}
	levels := make([]int, n)
	for i := range levels {
		if i < 2 {
			levels[i] = i
			continue
		}
		levels[i] = levels[i-1] + levels[i-2]
	}
	return levels
}

// NextLevel returns the level that follows a successful review.
// A level in the progression advances to the sum of itself and its predecessor;
// any other level snaps to the next value of the progression.
func NextLevel(level int) int {
	if level <= 0 {
		return 1
	}
	prev, curr := 1, 1
	for curr < level {
		prev, curr = curr, prev+curr
	}
	if curr == level {
		return prev + curr
	}
	return curr
}
