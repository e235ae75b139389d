package symbol

import (
	"fmt"
	"strconv"
)

// Prefilled symbols. Every compilation session starts with these interned
// at fixed handles, so keyword classification is integer comparison.
//
// The order is load-bearing: the classification predicates in symbol.go are
// range checks against named boundaries in this block, and the numeric
// families (int/uint/bytes) rely on stride-1 contiguity. init below
// validates both, so a reordering here fails fast at startup.
const (
	KwAbstract Symbol = iota
	KwAnonymous
	KwAs
	KwAssembly
	KwBreak
	KwCalldata
	KwCatch
	KwConstant
	KwConstructor
	KwContinue
	KwContract
	KwDelete
	KwDo
	KwElse
	KwEmit
	KwEnum
	KwEvent
	KwExternal
	KwFallback
	KwFor
	KwFunction
	KwHex
	KwIf
	KwImmutable
	KwImport
	KwIndexed
	KwInterface
	KwInternal
	KwIs
	KwLibrary
	KwMapping
	KwMemory
	KwModifier
	KwNew
	KwOverride
	KwPayable
	KwPragma
	KwPrivate
	KwPublic
	KwPure
	KwReceive
	KwReturn
	KwReturns
	KwStorage
	KwStruct
	KwThrow
	KwTry
	KwType
	KwUnchecked
	KwUnicode
	KwUsing
	KwView
	KwVirtual
	KwWhile

	// Elementary type names. KwInt..KwInt256, KwUInt..KwUInt256 and
	// KwBytes..KwBytes32 are contiguous with one handle per unit size so
	// that e.g. UintSymbol(n) is KwUInt + n.
	KwInt
	KwInt8
	KwInt16
	KwInt24
	KwInt32
	KwInt40
	KwInt48
	KwInt56
	KwInt64
	KwInt72
	KwInt80
	KwInt88
	KwInt96
	KwInt104
	KwInt112
	KwInt120
	KwInt128
	KwInt136
	KwInt144
	KwInt152
	KwInt160
	KwInt168
	KwInt176
	KwInt184
	KwInt192
	KwInt200
	KwInt208
	KwInt216
	KwInt224
	KwInt232
	KwInt240
	KwInt248
	KwInt256
	KwUInt
	KwUInt8
	KwUInt16
	KwUInt24
	KwUInt32
	KwUInt40
	KwUInt48
	KwUInt56
	KwUInt64
	KwUInt72
	KwUInt80
	KwUInt88
	KwUInt96
	KwUInt104
	KwUInt112
	KwUInt120
	KwUInt128
	KwUInt136
	KwUInt144
	KwUInt152
	KwUInt160
	KwUInt168
	KwUInt176
	KwUInt184
	KwUInt192
	KwUInt200
	KwUInt208
	KwUInt216
	KwUInt224
	KwUInt232
	KwUInt240
	KwUInt248
	KwUInt256
	KwBytes
	KwBytes1
	KwBytes2
	KwBytes3
	KwBytes4
	KwBytes5
	KwBytes6
	KwBytes7
	KwBytes8
	KwBytes9
	KwBytes10
	KwBytes11
	KwBytes12
	KwBytes13
	KwBytes14
	KwBytes15
	KwBytes16
	KwBytes17
	KwBytes18
	KwBytes19
	KwBytes20
	KwBytes21
	KwBytes22
	KwBytes23
	KwBytes24
	KwBytes25
	KwBytes26
	KwBytes27
	KwBytes28
	KwBytes29
	KwBytes30
	KwBytes31
	KwBytes32
	KwString
	KwAddress
	KwBool
	KwFixed
	KwUFixed

	// Number subdenominations.
	KwWei
	KwGwei
	KwEther
	KwSeconds
	KwMinutes
	KwHours
	KwDays
	KwWeeks
	KwYears

	// Boolean literals.
	KwFalse
	KwTrue

	// Reserved for possible future use.
	KwAfter
	KwAlias
	KwApply
	KwAuto
	KwByte
	KwCase
	KwCopyOf
	KwDefault
	KwDefine
	KwFinal
	KwImplements
	KwIn
	KwInline
	KwLet
	KwMacro
	KwMatch
	KwMutable
	KwNullLiteral
	KwOf
	KwPartial
	KwPromise
	KwReference
	KwRelocatable
	KwSealed
	KwSizeof
	KwStatic
	KwSupports
	KwSwitch
	KwTypedef
	KwTypeOf
	KwVar

	// Everything from here on is a weak keyword: legal as an ordinary name.

	// Yul-specific keywords.
	KwLeave
	KwRevert

	// Yul EVM builtins. Some builtins (address, byte, return, revert) are
	// declared earlier and are folded in by IsYulBuiltin.
	KwAdd
	KwAddmod
	KwAnd
	KwBalance
	KwBasefee
	KwBlockhash
	KwCall
	KwCallcode
	KwCalldatacopy
	KwCalldataload
	KwCalldatasize
	KwCaller
	KwCallvalue
	KwChainid
	KwCoinbase
	KwCreate
	KwCreate2
	KwDelegatecall
	KwDifficulty
	KwDiv
	KwEq
	KwExp
	KwExtcodecopy
	KwExtcodehash
	KwExtcodesize
	KwGas
	KwGaslimit
	KwGasprice
	KwGt
	KwInvalid
	KwIszero
	KwKeccak256
	KwLog0
	KwLog1
	KwLog2
	KwLog3
	KwLog4
	KwLt
	KwMload
	KwMod
	KwMsize
	KwMstore
	KwMstore8
	KwMul
	KwMulmod
	KwNot
	KwNumber
	KwOr
	KwOrigin
	KwPop
	KwPrevrandao
	KwReturndatacopy
	KwReturndatasize
	KwSar
	KwSdiv
	KwSelfbalance
	KwSelfdestruct
	KwSgt
	KwShl
	KwShr
	KwSignextend
	KwSload
	KwSlt
	KwSmod
	KwSstore
	KwStaticcall
	KwStop
	KwSub
	KwTimestamp
	KwXor

	// Experimental language keywords.
	KwClass
	KwInstantiation
	KwInteger
	KwItself
	KwStaticAssert
	KwBuiltin

	// Non-keyword symbols interned for fast access.
	SymUpperX
	SymAbicoder
	SymError
	SymExperimental
	SymFrom
	SymGlobal
	SymSolidity
	SymUnderscore
	SymLowerX

	// symDigitsBase is the handle of "0"; "0".."9" follow contiguously.
	symDigitsBase
)

// preinternedCount is the number of prefilled handles in a fresh session.
const preinternedCount = symDigitsBase + 10

var kwStrings = [...]string{
	KwAbstract:    "abstract",
	KwAnonymous:   "anonymous",
	KwAs:          "as",
	KwAssembly:    "assembly",
	KwBreak:       "break",
	KwCalldata:    "calldata",
	KwCatch:       "catch",
	KwConstant:    "constant",
	KwConstructor: "constructor",
	KwContinue:    "continue",
	KwContract:    "contract",
	KwDelete:      "delete",
	KwDo:          "do",
	KwElse:        "else",
	KwEmit:        "emit",
	KwEnum:        "enum",
	KwEvent:       "event",
	KwExternal:    "external",
	KwFallback:    "fallback",
	KwFor:         "for",
	KwFunction:    "function",
	KwHex:         "hex",
	KwIf:          "if",
	KwImmutable:   "immutable",
	KwImport:      "import",
	KwIndexed:     "indexed",
	KwInterface:   "interface",
	KwInternal:    "internal",
	KwIs:          "is",
	KwLibrary:     "library",
	KwMapping:     "mapping",
	KwMemory:      "memory",
	KwModifier:    "modifier",
	KwNew:         "new",
	KwOverride:    "override",
	KwPayable:     "payable",
	KwPragma:      "pragma",
	KwPrivate:     "private",
	KwPublic:      "public",
	KwPure:        "pure",
	KwReceive:     "receive",
	KwReturn:      "return",
	KwReturns:     "returns",
	KwStorage:     "storage",
	KwStruct:      "struct",
	KwThrow:       "throw",
	KwTry:         "try",
	KwType:        "type",
	KwUnchecked:   "unchecked",
	KwUnicode:     "unicode",
	KwUsing:       "using",
	KwView:        "view",
	KwVirtual:     "virtual",
	KwWhile:       "while",

	KwInt:     "int",
	KwInt8:    "int8",
	KwInt16:   "int16",
	KwInt24:   "int24",
	KwInt32:   "int32",
	KwInt40:   "int40",
	KwInt48:   "int48",
	KwInt56:   "int56",
	KwInt64:   "int64",
	KwInt72:   "int72",
	KwInt80:   "int80",
	KwInt88:   "int88",
	KwInt96:   "int96",
	KwInt104:  "int104",
	KwInt112:  "int112",
	KwInt120:  "int120",
	KwInt128:  "int128",
	KwInt136:  "int136",
	KwInt144:  "int144",
	KwInt152:  "int152",
	KwInt160:  "int160",
	KwInt168:  "int168",
	KwInt176:  "int176",
	KwInt184:  "int184",
	KwInt192:  "int192",
	KwInt200:  "int200",
	KwInt208:  "int208",
	KwInt216:  "int216",
	KwInt224:  "int224",
	KwInt232:  "int232",
	KwInt240:  "int240",
	KwInt248:  "int248",
	KwInt256:  "int256",
	KwUInt:    "uint",
	KwUInt8:   "uint8",
	KwUInt16:  "uint16",
	KwUInt24:  "uint24",
	KwUInt32:  "uint32",
	KwUInt40:  "uint40",
	KwUInt48:  "uint48",
	KwUInt56:  "uint56",
	KwUInt64:  "uint64",
	KwUInt72:  "uint72",
	KwUInt80:  "uint80",
	KwUInt88:  "uint88",
	KwUInt96:  "uint96",
	KwUInt104: "uint104",
	KwUInt112: "uint112",
	KwUInt120: "uint120",
	KwUInt128: "uint128",
	KwUInt136: "uint136",
	KwUInt144: "uint144",
	KwUInt152: "uint152",
	KwUInt160: "uint160",
	KwUInt168: "uint168",
	KwUInt176: "uint176",
	KwUInt184: "uint184",
	KwUInt192: "uint192",
	KwUInt200: "uint200",
	KwUInt208: "uint208",
	KwUInt216: "uint216",
	KwUInt224: "uint224",
	KwUInt232: "uint232",
	KwUInt240: "uint240",
	KwUInt248: "uint248",
	KwUInt256: "uint256",
	KwBytes:   "bytes",
	KwBytes1:  "bytes1",
	KwBytes2:  "bytes2",
	KwBytes3:  "bytes3",
	KwBytes4:  "bytes4",
	KwBytes5:  "bytes5",
	KwBytes6:  "bytes6",
	KwBytes7:  "bytes7",
	KwBytes8:  "bytes8",
	KwBytes9:  "bytes9",
	KwBytes10: "bytes10",
	KwBytes11: "bytes11",
	KwBytes12: "bytes12",
	KwBytes13: "bytes13",
	KwBytes14: "bytes14",
	KwBytes15: "bytes15",
	KwBytes16: "bytes16",
	KwBytes17: "bytes17",
	KwBytes18: "bytes18",
	KwBytes19: "bytes19",
	KwBytes20: "bytes20",
	KwBytes21: "bytes21",
	KwBytes22: "bytes22",
	KwBytes23: "bytes23",
	KwBytes24: "bytes24",
	KwBytes25: "bytes25",
	KwBytes26: "bytes26",
	KwBytes27: "bytes27",
	KwBytes28: "bytes28",
	KwBytes29: "bytes29",
	KwBytes30: "bytes30",
	KwBytes31: "bytes31",
	KwBytes32: "bytes32",
	KwString:  "string",
	KwAddress: "address",
	KwBool:    "bool",
	KwFixed:   "fixed",
	KwUFixed:  "ufixed",

	KwWei:     "wei",
	KwGwei:    "gwei",
	KwEther:   "ether",
	KwSeconds: "seconds",
	KwMinutes: "minutes",
	KwHours:   "hours",
	KwDays:    "days",
	KwWeeks:   "weeks",
	KwYears:   "years",

	KwFalse: "false",
	KwTrue:  "true",

	KwAfter:       "after",
	KwAlias:       "alias",
	KwApply:       "apply",
	KwAuto:        "auto",
	KwByte:        "byte",
	KwCase:        "case",
	KwCopyOf:      "copyof",
	KwDefault:     "default",
	KwDefine:      "define",
	KwFinal:       "final",
	KwImplements:  "implements",
	KwIn:          "in",
	KwInline:      "inline",
	KwLet:         "let",
	KwMacro:       "macro",
	KwMatch:       "match",
	KwMutable:     "mutable",
	KwNullLiteral: "null",
	KwOf:          "of",
	KwPartial:     "partial",
	KwPromise:     "promise",
	KwReference:   "reference",
	KwRelocatable: "relocatable",
	KwSealed:      "sealed",
	KwSizeof:      "sizeof",
	KwStatic:      "static",
	KwSupports:    "supports",
	KwSwitch:      "switch",
	KwTypedef:     "typedef",
	KwTypeOf:      "typeof",
	KwVar:         "var",

	KwLeave:  "leave",
	KwRevert: "revert",

	KwAdd:            "add",
	KwAddmod:         "addmod",
	KwAnd:            "and",
	KwBalance:        "balance",
	KwBasefee:        "basefee",
	KwBlockhash:      "blockhash",
	KwCall:           "call",
	KwCallcode:       "callcode",
	KwCalldatacopy:   "calldatacopy",
	KwCalldataload:   "calldataload",
	KwCalldatasize:   "calldatasize",
	KwCaller:         "caller",
	KwCallvalue:      "callvalue",
	KwChainid:        "chainid",
	KwCoinbase:       "coinbase",
	KwCreate:         "create",
	KwCreate2:        "create2",
	KwDelegatecall:   "delegatecall",
	KwDifficulty:     "difficulty",
	KwDiv:            "div",
	KwEq:             "eq",
	KwExp:            "exp",
	KwExtcodecopy:    "extcodecopy",
	KwExtcodehash:    "extcodehash",
	KwExtcodesize:    "extcodesize",
	KwGas:            "gas",
	KwGaslimit:       "gaslimit",
	KwGasprice:       "gasprice",
	KwGt:             "gt",
	KwInvalid:        "invalid",
	KwIszero:         "iszero",
	KwKeccak256:      "keccak256",
	KwLog0:           "log0",
	KwLog1:           "log1",
	KwLog2:           "log2",
	KwLog3:           "log3",
	KwLog4:           "log4",
	KwLt:             "lt",
	KwMload:          "mload",
	KwMod:            "mod",
	KwMsize:          "msize",
	KwMstore:         "mstore",
	KwMstore8:        "mstore8",
	KwMul:            "mul",
	KwMulmod:         "mulmod",
	KwNot:            "not",
	KwNumber:         "number",
	KwOr:             "or",
	KwOrigin:         "origin",
	KwPop:            "pop",
	KwPrevrandao:     "prevrandao",
	KwReturndatacopy: "returndatacopy",
	KwReturndatasize: "returndatasize",
	KwSar:            "sar",
	KwSdiv:           "sdiv",
	KwSelfbalance:    "selfbalance",
	KwSelfdestruct:   "selfdestruct",
	KwSgt:            "sgt",
	KwShl:            "shl",
	KwShr:            "shr",
	KwSignextend:     "signextend",
	KwSload:          "sload",
	KwSlt:            "slt",
	KwSmod:           "smod",
	KwSstore:         "sstore",
	KwStaticcall:     "staticcall",
	KwStop:           "stop",
	KwSub:            "sub",
	KwTimestamp:      "timestamp",
	KwXor:            "xor",

	KwClass:         "class",
	KwInstantiation: "instantiation",
	KwInteger:       "Integer",
	KwItself:        "itself",
	KwStaticAssert:  "static_assert",
	KwBuiltin:       "__builtin",

	SymUpperX:       "X",
	SymAbicoder:     "abicoder",
	SymError:        "error",
	SymExperimental: "experimental",
	SymFrom:         "from",
	SymGlobal:       "global",
	SymSolidity:     "solidity",
	SymUnderscore:   "_",
	SymLowerX:       "x",
}

// PrefillStrings returns the full prefill set for a fresh session: the
// keyword/builtin table followed by the decimal digits "0".."9".
func PrefillStrings() []string {
	out := make([]string, 0, preinternedCount)
	out = append(out, kwStrings[:]...)
	for d := range 10 {
		out = append(out, strconv.Itoa(d))
	}
	return out
}

// init validates the prefill layout: range boundaries used by the
// classification predicates and the stride-1 numeric families. A failure
// here means the table above was edited without keeping the order.
func init() {
	for sym, s := range kwStrings {
		if s == "" {
			panic(fmt.Sprintf("symbol: prefill handle %d has no text", sym))
		}
	}

	boundaries := map[Symbol]string{
		KwAbstract: "abstract",
		KwWhile:    "while",
		KwInt:      "int",
		KwUFixed:   "ufixed",
		KwFalse:    "false",
		KwTrue:     "true",
		KwAfter:    "after",
		KwVar:      "var",
		KwLeave:    "leave",
		KwAdd:      "add",
		KwXor:      "xor",
		KwBuiltin:  "__builtin",
	}
	for sym, want := range boundaries {
		if got := kwStrings[sym]; got != want {
			panic(fmt.Sprintf("symbol: boundary %d is %q, want %q", sym, got, want))
		}
	}

	for n := 1; n <= 32; n++ {
		bits := strconv.Itoa(n * 8)
		if got := kwStrings[KwInt+Symbol(n)]; got != "int"+bits {
			panic(fmt.Sprintf("symbol: int family broken at %d: %q", n, got))
		}
		if got := kwStrings[KwUInt+Symbol(n)]; got != "uint"+bits {
			panic(fmt.Sprintf("symbol: uint family broken at %d: %q", n, got))
		}
		if got := kwStrings[KwBytes+Symbol(n)]; got != "bytes"+strconv.Itoa(n) {
			panic(fmt.Sprintf("symbol: bytes family broken at %d: %q", n, got))
		}
	}
}
