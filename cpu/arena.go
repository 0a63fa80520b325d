package cpu

const (
	MEMORY_SIZE = 0x1_0000 // Bytes of addressable memory.

	ARENA_SCREEN    = 0x0000 // Screen memory, read by the renderer.
	ARENA_START     = 0x0800 // Program start, after screen memory.
	ARENA_STACK     = 0xfe00 // Single page call stack.
	ARENA_REGISTERS = 0xff00 // Register page.

	ARENA_SCREEN_SIZE   = ARENA_START - ARENA_SCREEN
	ARENA_REGISTER_SIZE = 0x100
)
