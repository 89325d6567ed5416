package opcode

// Opcodes of the target VM.
const (
	None              Op = 0
	LoadPri           Op = 1
	LoadAlt           Op = 2
	LoadSPri          Op = 3
	LoadSAlt          Op = 4
	LrefSPri          Op = 7
	LrefSAlt          Op = 8
	LoadI             Op = 9
	LodbI             Op = 10
	ConstPri          Op = 11
	ConstAlt          Op = 12
	AddrPri           Op = 13
	AddrAlt           Op = 14
	StorPri           Op = 15
	StorAlt           Op = 16
	StorSPri          Op = 17
	StorSAlt          Op = 18
	SrefSPri          Op = 21
	SrefSAlt          Op = 22
	StorI             Op = 23
	StrbI             Op = 24
	Lidx              Op = 25
	Idxaddr           Op = 27
	MovePri           Op = 33
	MoveAlt           Op = 34
	Xchg              Op = 35
	PushPri           Op = 36
	PushAlt           Op = 37
	PushC             Op = 39
	Push              Op = 40
	PushS             Op = 41
	PopPri            Op = 42
	PopAlt            Op = 43
	Stack             Op = 44
	Heap              Op = 45
	Proc              Op = 46
	Retn              Op = 48
	Call              Op = 49
	Jump              Op = 51
	Jzer              Op = 53
	Jnz               Op = 54
	Jeq               Op = 55
	Jneq              Op = 56
	Jsless            Op = 61
	Jsleq             Op = 62
	Jsgrtr            Op = 63
	Jsgeq             Op = 64
	Shl               Op = 65
	Shr               Op = 66
	Sshr              Op = 67
	ShlCPri           Op = 68
	ShlCAlt           Op = 69
	Smul              Op = 72
	Sdiv              Op = 73
	SdivAlt           Op = 74
	Add               Op = 78
	Sub               Op = 79
	SubAlt            Op = 80
	And               Op = 81
	Or                Op = 82
	Xor               Op = 83
	Not               Op = 84
	Neg               Op = 85
	Invert            Op = 86
	AddC              Op = 87
	SmulC             Op = 88
	ZeroPri           Op = 89
	ZeroAlt           Op = 90
	Zero              Op = 91
	ZeroS             Op = 92
	Eq                Op = 95
	Neq               Op = 96
	Sless             Op = 101
	Sleq              Op = 102
	Sgrtr             Op = 103
	Sgeq              Op = 104
	EqCPri            Op = 105
	EqCAlt            Op = 106
	IncPri            Op = 107
	IncAlt            Op = 108
	Inc               Op = 109
	IncS              Op = 110
	IncI              Op = 111
	DecPri            Op = 112
	DecAlt            Op = 113
	Dec               Op = 114
	DecS              Op = 115
	DecI              Op = 116
	Movs              Op = 117
	Fill              Op = 119
	Halt              Op = 120
	Bounds            Op = 121
	SysreqC           Op = 123
	Switch            Op = 129
	Casetbl           Op = 130
	SwapPri           Op = 131
	SwapAlt           Op = 132
	PushAdr           Op = 133
	Nop               Op = 134
	SysreqN           Op = 135
	Break             Op = 137
	Push2C            Op = 138
	Push2             Op = 139
	Push2S            Op = 140
	Push2Adr          Op = 141
	Push3C            Op = 142
	Push3             Op = 143
	Push3S            Op = 144
	Push3Adr          Op = 145
	Push4C            Op = 146
	Push4             Op = 147
	Push4S            Op = 148
	Push4Adr          Op = 149
	Push5C            Op = 150
	Push5             Op = 151
	Push5S            Op = 152
	Push5Adr          Op = 153
	LoadBoth          Op = 154
	LoadSBoth         Op = 155
	Const             Op = 156
	ConstS            Op = 157
	TrackerPushC      Op = 160
	TrackerPopSetheap Op = 161
	Genarray          Op = 162
	GenarrayZ         Op = 163
	StradjustPri      Op = 164
	Endproc           Op = 166
	InitarrayPri      Op = 169
	InitarrayAlt      Op = 170
	HeapSave          Op = 171
	HeapRestore       Op = 172
	Fabs              Op = 174
	Float             Op = 175
	Floatadd          Op = 176
	Floatsub          Op = 177
	Floatmul          Op = 178
	Floatdiv          Op = 179
	RndToNearest      Op = 180
	RndToFloor        Op = 181
	RndToCeil         Op = 182
	RndToZero         Op = 183
	Floatcmp          Op = 184
	FloatGt           Op = 185
	FloatGe           Op = 186
	FloatLt           Op = 187
	FloatLe           Op = 188
	FloatNe           Op = 189
	FloatEq           Op = 190
	FloatNot          Op = 191
)

var table = map[Op]info{
	None:              {"none", 0},
	LoadPri:           {"load.pri", 1},
	LoadAlt:           {"load.alt", 1},
	LoadSPri:          {"load.s.pri", 1},
	LoadSAlt:          {"load.s.alt", 1},
	LrefSPri:          {"lref.s.pri", 1},
	LrefSAlt:          {"lref.s.alt", 1},
	LoadI:             {"load.i", 0},
	LodbI:             {"lodb.i", 1},
	ConstPri:          {"const.pri", 1},
	ConstAlt:          {"const.alt", 1},
	AddrPri:           {"addr.pri", 1},
	AddrAlt:           {"addr.alt", 1},
	StorPri:           {"stor.pri", 1},
	StorAlt:           {"stor.alt", 1},
	StorSPri:          {"stor.s.pri", 1},
	StorSAlt:          {"stor.s.alt", 1},
	SrefSPri:          {"sref.s.pri", 1},
	SrefSAlt:          {"sref.s.alt", 1},
	StorI:             {"stor.i", 0},
	StrbI:             {"strb.i", 1},
	Lidx:              {"lidx", 0},
	Idxaddr:           {"idxaddr", 0},
	MovePri:           {"move.pri", 0},
	MoveAlt:           {"move.alt", 0},
	Xchg:              {"xchg", 0},
	PushPri:           {"push.pri", 0},
	PushAlt:           {"push.alt", 0},
	PushC:             {"push.c", 1},
	Push:              {"push", 1},
	PushS:             {"push.s", 1},
	PopPri:            {"pop.pri", 0},
	PopAlt:            {"pop.alt", 0},
	Stack:             {"stack", 1},
	Heap:              {"heap", 1},
	Proc:              {"proc", 0},
	Retn:              {"retn", 0},
	Call:              {"call", 1},
	Jump:              {"jump", 1},
	Jzer:              {"jzer", 1},
	Jnz:               {"jnz", 1},
	Jeq:               {"jeq", 1},
	Jneq:              {"jneq", 1},
	Jsless:            {"jsless", 1},
	Jsleq:             {"jsleq", 1},
	Jsgrtr:            {"jsgrtr", 1},
	Jsgeq:             {"jsgeq", 1},
	Shl:               {"shl", 0},
	Shr:               {"shr", 0},
	Sshr:              {"sshr", 0},
	ShlCPri:           {"shl.c.pri", 1},
	ShlCAlt:           {"shl.c.alt", 1},
	Smul:              {"smul", 0},
	Sdiv:              {"sdiv", 0},
	SdivAlt:           {"sdiv.alt", 0},
	Add:               {"add", 0},
	Sub:               {"sub", 0},
	SubAlt:            {"sub.alt", 0},
	And:               {"and", 0},
	Or:                {"or", 0},
	Xor:               {"xor", 0},
	Not:               {"not", 0},
	Neg:               {"neg", 0},
	Invert:            {"invert", 0},
	AddC:              {"add.c", 1},
	SmulC:             {"smul.c", 1},
	ZeroPri:           {"zero.pri", 0},
	ZeroAlt:           {"zero.alt", 0},
	Zero:              {"zero", 1},
	ZeroS:             {"zero.s", 1},
	Eq:                {"eq", 0},
	Neq:               {"neq", 0},
	Sless:             {"sless", 0},
	Sleq:              {"sleq", 0},
	Sgrtr:             {"sgrtr", 0},
	Sgeq:              {"sgeq", 0},
	EqCPri:            {"eq.c.pri", 1},
	EqCAlt:            {"eq.c.alt", 1},
	IncPri:            {"inc.pri", 0},
	IncAlt:            {"inc.alt", 0},
	Inc:               {"inc", 1},
	IncS:              {"inc.s", 1},
	IncI:              {"inc.i", 0},
	DecPri:            {"dec.pri", 0},
	DecAlt:            {"dec.alt", 0},
	Dec:               {"dec", 1},
	DecS:              {"dec.s", 1},
	DecI:              {"dec.i", 0},
	Movs:              {"movs", 1},
	Fill:              {"fill", 1},
	Halt:              {"halt", 1},
	Bounds:            {"bounds", 1},
	SysreqC:           {"sysreq.c", 1},
	Switch:            {"switch", 1},
	Casetbl:           {"casetbl", 2},
	SwapPri:           {"swap.pri", 0},
	SwapAlt:           {"swap.alt", 0},
	PushAdr:           {"push.adr", 1},
	Nop:               {"nop", 0},
	SysreqN:           {"sysreq.n", 2},
	Break:             {"break", 0},
	Push2C:            {"push2.c", 2},
	Push2:             {"push2", 2},
	Push2S:            {"push2.s", 2},
	Push2Adr:          {"push2.adr", 2},
	Push3C:            {"push3.c", 3},
	Push3:             {"push3", 3},
	Push3S:            {"push3.s", 3},
	Push3Adr:          {"push3.adr", 3},
	Push4C:            {"push4.c", 4},
	Push4:             {"push4", 4},
	Push4S:            {"push4.s", 4},
	Push4Adr:          {"push4.adr", 4},
	Push5C:            {"push5.c", 5},
	Push5:             {"push5", 5},
	Push5S:            {"push5.s", 5},
	Push5Adr:          {"push5.adr", 5},
	LoadBoth:          {"load.both", 2},
	LoadSBoth:         {"load.s.both", 2},
	Const:             {"const", 2},
	ConstS:            {"const.s", 2},
	TrackerPushC:      {"tracker.push.c", 1},
	TrackerPopSetheap: {"tracker.pop.setheap", 0},
	Genarray:          {"genarray", 1},
	GenarrayZ:         {"genarray.z", 1},
	StradjustPri:      {"stradjust.pri", 0},
	Endproc:           {"endproc", 0},
	InitarrayPri:      {"initarray.pri", 5},
	InitarrayAlt:      {"initarray.alt", 5},
	HeapSave:          {"heap.save", 0},
	HeapRestore:       {"heap.restore", 0},
	Fabs:              {"fabs", 0},
	Float:             {"float", 0},
	Floatadd:          {"floatadd", 0},
	Floatsub:          {"floatsub", 0},
	Floatmul:          {"floatmul", 0},
	Floatdiv:          {"floatdiv", 0},
	RndToNearest:      {"rnd.to.nearest", 0},
	RndToFloor:        {"rnd.to.floor", 0},
	RndToCeil:         {"rnd.to.ceil", 0},
	RndToZero:         {"rnd.to.zero", 0},
	Floatcmp:          {"floatcmp", 0},
	FloatGt:           {"float.gt", 0},
	FloatGe:           {"float.ge", 0},
	FloatLt:           {"float.lt", 0},
	FloatLe:           {"float.le", 0},
	FloatNe:           {"float.ne", 0},
	FloatEq:           {"float.eq", 0},
	FloatNot:          {"float.not", 0},
}
