package err

// A closed enumeration of everything that can be wrong with a script, each
// kind mapped to a message template with positional {0}, {1}, ... holes.
//
// The numeric codes are part of the editor protocol and must never be
// renumbered: new kinds go at the end of their block or after the last one.
//
// Major blocks are lex, parse, declaration, type, control flow, class,
// include, and resource errors, plus the warnings at the end.

type Kind int

const (
	NONE Kind = iota

	// Lexical errors. These are fatal to tokenization.
	INVALID_CHARACTER
	UNTERMINATED_STRING
	MULTIPLE_DECIMAL_POINTS
	INVALID_NUMBER
	INVALID_ESCAPE_SEQUENCE

	// Syntax errors. Fatal to the parse of one unit.
	UNEXPECTED_TOKEN
	EXPRESSION_EXPECTED
	VARIABLE_NAME_EXPECTED
	FUNCTION_NAME_EXPECTED
	CLASS_NAME_EXPECTED
	PARENT_CLASS_NAME_EXPECTED
	PARAMETER_NAME_EXPECTED
	MEMBER_NAME_EXPECTED
	FIELD_NAME_EXPECTED
	OPENING_PARENTHESIS_EXPECTED
	CLOSING_PARENTHESIS_EXPECTED
	OPENING_BRACE_EXPECTED
	CLOSING_BRACE_EXPECTED
	OPENING_BRACKET_EXPECTED
	CLOSING_BRACKET_EXPECTED
	ASSIGNMENT_OPERATOR_EXPECTED
	COLON_EXPECTED
	KEYWORD_IN_EXPECTED
	WHILE_EXPECTED
	END_OF_SCRIPT_UNEXPECTED
	KEYWORD_UNEXPECTED
	VALUE_EXPECTED
	TYPE_NAME_EXPECTED
	DUPLICATE_PARAMETER
	INVALID_FOR_CLAUSE
	INVALID_EXPORT // reserved by the protocol, never produced here
	STRING_EXPECTED

	// Declaration errors. Analysis continues using the first declaration.
	VARIABLE_NAME_UNAVAILABLE
	FUNCTION_NAME_UNAVAILABLE
	CLASS_NAME_UNAVAILABLE
	GLOBAL_NAME_UNAVAILABLE
	PARAMETER_NAME_UNAVAILABLE
	UNKNOWN_VARIABLE
	UNKNOWN_FUNCTION
	UNKNOWN_CLASS
	UNKNOWN_TYPE
	CONSTANT_NOT_INITIALIZED
	REASSIGN_CONSTANT
	GLOBAL_ONLY_AT_TOP_LEVEL
	GLOBAL_INITIALIZER_MUST_BE_CONSTANT
	INCLUDE_ONLY_AT_TOP_LEVEL
	INCLUDE_PATH_MUST_BE_STRING
	FUNCTION_ARITY_UNAVAILABLE
	KEYWORD_NOT_AVAILABLE_IN_THIS_VERSION
	LOCAL_DECLARATION_OUTSIDE_BLOCK

	// Type errors.
	INCOMPATIBLE_TYPE
	INVALID_ASSIGNMENT_TARGET
	WRONG_ARGUMENT_COUNT
	WRONG_ARGUMENT_TYPE
	NOT_A_FUNCTION
	NOT_INDEXABLE
	NOT_ITERABLE
	INVALID_INDEX_TYPE
	INVALID_MEMBER_ACCESS
	RETURN_TYPE_MISMATCH
	MISSING_RETURN_VALUE
	VOID_FUNCTION_RETURNS_VALUE
	CANNOT_ADD_TYPES
	CANNOT_SUBTRACT_TYPES
	CANNOT_MULTIPLY_TYPES
	CANNOT_DIVIDE_TYPES
	CANNOT_MODULO_TYPES
	CANNOT_RAISE_TYPES
	CANNOT_COMPARE_TYPES
	CANNOT_NEGATE_TYPE
	CANNOT_LOGIC_TYPE
	CANNOT_BITWISE_TYPES
	CANNOT_SHIFT_TYPES
	CANNOT_INCREMENT_TYPE
	CANNOT_DECREMENT_TYPE
	CANNOT_CONCATENATE_TYPES
	ARRAY_ELEMENT_TYPE_MISMATCH
	MAP_KEY_TYPE_MISMATCH
	MAP_VALUE_TYPE_MISMATCH
	SET_ELEMENT_TYPE_MISMATCH
	TERNARY_CONDITION_NOT_BOOLEAN
	CONDITION_NOT_BOOLEAN
	INVALID_COMPOUND_ASSIGNMENT
	FUNCTION_TYPE_MISMATCH
	TYPE_ANNOTATION_NOT_A_TYPE
	VOID_IN_EXPRESSION
	NULL_MEMBER_ACCESS
	AMBIGUOUS_TYPE
	ARRAY_OF_VOID
	TYPE_ARGUMENT_COUNT

	// Control-flow errors.
	BREAK_OUTSIDE_LOOP
	CONTINUE_OUTSIDE_LOOP
	RETURN_OUTSIDE_FUNCTION

	// Class errors.
	CONSTRUCTOR_ALREADY_EXISTS
	FIELD_ALREADY_EXISTS
	METHOD_ALREADY_EXISTS
	STATIC_MEMBER_ALREADY_EXISTS
	UNKNOWN_FIELD
	UNKNOWN_METHOD
	UNKNOWN_STATIC_MEMBER
	THIS_OUTSIDE_CLASS
	SUPER_OUTSIDE_CLASS
	SUPER_WITHOUT_PARENT
	UNKNOWN_PARENT_CLASS
	CLASS_EXTENDS_ITSELF
	NEW_OF_NON_CLASS
	CONSTRUCTOR_ARGUMENT_COUNT
	FIELD_OUTSIDE_CLASS
	STATIC_ACCESS_ON_INSTANCE
	INSTANCE_ACCESS_ON_CLASS

	// Include and resource errors. The last three abort the whole request.
	AI_NOT_EXISTING
	AI_EMPTY // reserved by the protocol, never produced here
	TOO_MANY_INCLUDED_AIS
	TOO_MANY_ERRORS
	ANALYSIS_TIMEOUT
	INTERNAL_ERROR

	// Warnings.
	DANGEROUS_CONVERSION
	VARIABLE_NOT_INITIALIZED
	UNUSED_VARIABLE
	UNUSED_PARAMETER
	UNREACHABLE_CODE
	SHADOWING_VARIABLE
	ASSIGNMENT_IN_CONDITION
	EMPTY_BLOCK
	DEPRECATED_FUNCTION
	CONSTANT_CONDITION
	IMPLICIT_GLOBAL_ACCESS
	USELESS_EXPRESSION_STATEMENT
	DIVISION_BY_ZERO
	MODULO_BY_ZERO
	COMPARISON_ALWAYS_TRUE
	COMPARISON_ALWAYS_FALSE
	REDUNDANT_CAST
	EMPTY_INCLUDE
	MISSING_SEMICOLON_STYLE // reserved for the strict option
	SELF_ASSIGNMENT
	DUPLICATE_CASE // reserved by the protocol, never produced here
	INFINITE_LOOP_SUSPECTED
	NESTED_TERNARY
	TOO_MANY_PARAMETERS
	LONG_FUNCTION
	MAGIC_NUMBER
	NON_STRICT_EQUALITY
	IMPLICIT_NULL_RETURN
	SHADOWING_BUILTIN
	VARIABLE_USED_BEFORE_ASSIGNMENT
	POINTLESS_CONDITION
	EMPTY_FUNCTION_BODY
	MUTATED_LOOP_VARIABLE
	STRING_INDEX_DEPRECATED
	OCTAL_LITERAL_STYLE
	TRAILING_WHITESPACE_IN_STRING
	SUSPICIOUS_SEMICOLON
	ASSIGN_TO_PARAMETER
	INCLUDE_SHADOWS_GLOBAL
	GLOBAL_WRITE_IN_FUNCTION
)

var templates = map[Kind]string{
	INVALID_CHARACTER:       "invalid character '{0}'",
	UNTERMINATED_STRING:     "unterminated string literal",
	MULTIPLE_DECIMAL_POINTS: "number '{0}' has more than one decimal point",
	INVALID_NUMBER:          "'{0}' is not a valid number",
	INVALID_ESCAPE_SEQUENCE: "invalid escape sequence '\\{0}'",

	UNEXPECTED_TOKEN:             "unexpected token '{0}', expected {1}",
	EXPRESSION_EXPECTED:          "expected an expression, found '{0}'",
	VARIABLE_NAME_EXPECTED:       "expected a variable name, found '{0}'",
	FUNCTION_NAME_EXPECTED:       "expected a function name, found '{0}'",
	CLASS_NAME_EXPECTED:          "expected a class name, found '{0}'",
	PARENT_CLASS_NAME_EXPECTED:   "expected a parent class name after 'extends', found '{0}'",
	PARAMETER_NAME_EXPECTED:      "expected a parameter name, found '{0}'",
	MEMBER_NAME_EXPECTED:         "expected a member name after '.', found '{0}'",
	FIELD_NAME_EXPECTED:          "expected a field name, found '{0}'",
	OPENING_PARENTHESIS_EXPECTED: "expected '(', found '{0}'",
	CLOSING_PARENTHESIS_EXPECTED: "expected ')', found '{0}'",
	OPENING_BRACE_EXPECTED:       "expected '{', found '{0}'",
	CLOSING_BRACE_EXPECTED:       "expected '}', found '{0}'",
	OPENING_BRACKET_EXPECTED:     "expected '[', found '{0}'",
	CLOSING_BRACKET_EXPECTED:     "expected ']', found '{0}'",
	ASSIGNMENT_OPERATOR_EXPECTED: "expected '=', found '{0}'",
	COLON_EXPECTED:               "expected ':', found '{0}'",
	KEYWORD_IN_EXPECTED:          "expected 'in', found '{0}'",
	WHILE_EXPECTED:               "expected 'while' after 'do' block, found '{0}'",
	END_OF_SCRIPT_UNEXPECTED:     "unexpected end of script",
	KEYWORD_UNEXPECTED:           "keyword '{0}' cannot be used here",
	VALUE_EXPECTED:               "expected a value, found '{0}'",
	TYPE_NAME_EXPECTED:           "expected a type name, found '{0}'",
	DUPLICATE_PARAMETER:          "duplicate parameter name '{0}'",
	INVALID_FOR_CLAUSE:           "malformed 'for' clause near '{0}'",
	INVALID_EXPORT:               "invalid export",
	STRING_EXPECTED:              "expected a string literal, found '{0}'",

	VARIABLE_NAME_UNAVAILABLE:             "the name '{0}' is already taken",
	FUNCTION_NAME_UNAVAILABLE:             "a function named '{0}' already exists",
	CLASS_NAME_UNAVAILABLE:                "a class named '{0}' already exists",
	GLOBAL_NAME_UNAVAILABLE:               "a global named '{0}' already exists",
	PARAMETER_NAME_UNAVAILABLE:            "a parameter named '{0}' already exists",
	UNKNOWN_VARIABLE:                      "unknown variable '{0}'",
	UNKNOWN_FUNCTION:                      "unknown function '{0}'",
	UNKNOWN_CLASS:                         "unknown class '{0}'",
	UNKNOWN_TYPE:                          "unknown type '{0}'",
	CONSTANT_NOT_INITIALIZED:              "constant '{0}' must be initialized",
	REASSIGN_CONSTANT:                     "cannot reassign constant '{0}'",
	GLOBAL_ONLY_AT_TOP_LEVEL:              "'global' declarations are only allowed at the top level",
	GLOBAL_INITIALIZER_MUST_BE_CONSTANT:   "the initializer of global '{0}' must be a constant expression",
	INCLUDE_ONLY_AT_TOP_LEVEL:             "'include' is only allowed at the top level",
	INCLUDE_PATH_MUST_BE_STRING:           "the argument of 'include' must be a string literal",
	FUNCTION_ARITY_UNAVAILABLE:            "a function named '{0}' taking {1} arguments already exists",
	KEYWORD_NOT_AVAILABLE_IN_THIS_VERSION: "'{0}' requires language version {1} or later",
	LOCAL_DECLARATION_OUTSIDE_BLOCK:       "declaration of '{0}' is not inside a block",

	INCOMPATIBLE_TYPE:             "cannot use a value of type {0} where {1} is expected",
	INVALID_ASSIGNMENT_TARGET:     "cannot assign to this expression",
	WRONG_ARGUMENT_COUNT:          "function '{0}' takes {1} arguments, {2} given",
	WRONG_ARGUMENT_TYPE:           "argument {0} of '{1}' should be of type {2}, not {3}",
	NOT_A_FUNCTION:                "'{0}' is not a function",
	NOT_INDEXABLE:                 "a value of type {0} cannot be indexed",
	NOT_ITERABLE:                  "a value of type {0} cannot be iterated over",
	INVALID_INDEX_TYPE:            "cannot index with a value of type {0}",
	INVALID_MEMBER_ACCESS:         "a value of type {0} has no members",
	RETURN_TYPE_MISMATCH:          "cannot return a value of type {0} from a function returning {1}",
	MISSING_RETURN_VALUE:          "function '{0}' must return a value of type {1}",
	VOID_FUNCTION_RETURNS_VALUE:   "function '{0}' returns void and cannot return a value",
	CANNOT_ADD_TYPES:              "cannot add {0} and {1}",
	CANNOT_SUBTRACT_TYPES:         "cannot subtract {1} from {0}",
	CANNOT_MULTIPLY_TYPES:         "cannot multiply {0} by {1}",
	CANNOT_DIVIDE_TYPES:           "cannot divide {0} by {1}",
	CANNOT_MODULO_TYPES:           "cannot take {0} modulo {1}",
	CANNOT_RAISE_TYPES:            "cannot raise {0} to the power of {1}",
	CANNOT_COMPARE_TYPES:          "cannot compare {0} with {1}",
	CANNOT_NEGATE_TYPE:            "cannot negate a value of type {0}",
	CANNOT_LOGIC_TYPE:             "operator '{0}' expects a boolean, not {1}",
	CANNOT_BITWISE_TYPES:          "bitwise operator '{0}' expects integers, not {1} and {2}",
	CANNOT_SHIFT_TYPES:            "shift operator '{0}' expects integers, not {1} and {2}",
	CANNOT_INCREMENT_TYPE:         "cannot increment a value of type {0}",
	CANNOT_DECREMENT_TYPE:         "cannot decrement a value of type {0}",
	CANNOT_CONCATENATE_TYPES:      "cannot concatenate {0} and {1}",
	ARRAY_ELEMENT_TYPE_MISMATCH:   "array of {0} cannot hold a value of type {1}",
	MAP_KEY_TYPE_MISMATCH:         "map with {0} keys cannot be keyed by {1}",
	MAP_VALUE_TYPE_MISMATCH:       "map of {0} values cannot hold a value of type {1}",
	SET_ELEMENT_TYPE_MISMATCH:     "set of {0} cannot hold a value of type {1}",
	TERNARY_CONDITION_NOT_BOOLEAN: "the condition of '?:' should be a boolean, not {0}",
	CONDITION_NOT_BOOLEAN:         "the condition of '{0}' should be a boolean, not {1}",
	INVALID_COMPOUND_ASSIGNMENT:   "operator '{0}' cannot be applied to {1} and {2}",
	FUNCTION_TYPE_MISMATCH:        "function type {0} is not compatible with {1}",
	TYPE_ANNOTATION_NOT_A_TYPE:    "'{0}' does not name a type",
	VOID_IN_EXPRESSION:            "a void value cannot be used in an expression",
	NULL_MEMBER_ACCESS:            "possible member access on null value",
	AMBIGUOUS_TYPE:                "the type of this expression is ambiguous",
	ARRAY_OF_VOID:                 "an array cannot hold void values",
	TYPE_ARGUMENT_COUNT:           "type '{0}' takes {1} type arguments, {2} given",

	BREAK_OUTSIDE_LOOP:      "'break' outside of a loop",
	CONTINUE_OUTSIDE_LOOP:   "'continue' outside of a loop",
	RETURN_OUTSIDE_FUNCTION: "'return' outside of a function",

	CONSTRUCTOR_ALREADY_EXISTS:   "class '{0}' already has a constructor with {1} parameters",
	FIELD_ALREADY_EXISTS:         "class '{0}' already has a field named '{1}'",
	METHOD_ALREADY_EXISTS:        "class '{0}' already has a method named '{1}'",
	STATIC_MEMBER_ALREADY_EXISTS: "class '{0}' already has a static member named '{1}'",
	UNKNOWN_FIELD:                "class '{0}' has no field named '{1}'",
	UNKNOWN_METHOD:               "class '{0}' has no method named '{1}'",
	UNKNOWN_STATIC_MEMBER:        "class '{0}' has no static member named '{1}'",
	THIS_OUTSIDE_CLASS:           "'this' outside of a class",
	SUPER_OUTSIDE_CLASS:          "'super' outside of a class",
	SUPER_WITHOUT_PARENT:         "class '{0}' has no parent class",
	UNKNOWN_PARENT_CLASS:         "unknown parent class '{0}'",
	CLASS_EXTENDS_ITSELF:         "class '{0}' cannot extend itself",
	NEW_OF_NON_CLASS:             "'{0}' is not a class",
	CONSTRUCTOR_ARGUMENT_COUNT:   "the constructor of '{0}' takes {1} arguments, {2} given",
	FIELD_OUTSIDE_CLASS:          "field declaration outside of a class body",
	STATIC_ACCESS_ON_INSTANCE:    "static member '{0}' should be accessed through the class, not an instance",
	INSTANCE_ACCESS_ON_CLASS:     "member '{0}' should be accessed through an instance, not the class",

	AI_NOT_EXISTING:       "included AI '{0}' does not exist",
	AI_EMPTY:              "included AI '{0}' is empty",
	TOO_MANY_INCLUDED_AIS: "too many included AIs (the limit is {0})",
	TOO_MANY_ERRORS:       "too many errors, analysis aborted",
	ANALYSIS_TIMEOUT:      "analysis took too long and was aborted",
	INTERNAL_ERROR:        "internal analyzer error: {0}",

	DANGEROUS_CONVERSION:          "dangerous conversion of {0} to {1}",
	VARIABLE_NOT_INITIALIZED:      "variable '{0}' may be used before it is given a value",
	UNUSED_VARIABLE:               "variable '{0}' is never used",
	UNUSED_PARAMETER:              "parameter '{0}' is never used",
	UNREACHABLE_CODE:              "unreachable code",
	SHADOWING_VARIABLE:            "declaration of '{0}' shadows an outer declaration",
	ASSIGNMENT_IN_CONDITION:       "assignment inside a condition, did you mean '=='?",
	EMPTY_BLOCK:                   "empty block",
	DEPRECATED_FUNCTION:           "function '{0}' is deprecated",
	CONSTANT_CONDITION:            "this condition is always {0}",
	IMPLICIT_GLOBAL_ACCESS:        "implicit access to global '{0}'",
	USELESS_EXPRESSION_STATEMENT:  "this expression has no effect",
	DIVISION_BY_ZERO:              "division by zero",
	MODULO_BY_ZERO:                "modulo by zero",
	COMPARISON_ALWAYS_TRUE:        "this comparison is always true",
	COMPARISON_ALWAYS_FALSE:       "this comparison is always false",
	REDUNDANT_CAST:                "redundant conversion of {0} to {0}",
	EMPTY_INCLUDE:                 "include path is empty",
	MISSING_SEMICOLON_STYLE:       "missing semicolon",
	SELF_ASSIGNMENT:               "'{0}' is assigned to itself",
	DUPLICATE_CASE:                "duplicate case",
	INFINITE_LOOP_SUSPECTED:       "this loop never terminates",
	NESTED_TERNARY:                "nested ternary expressions are hard to read",
	TOO_MANY_PARAMETERS:           "function '{0}' has too many parameters",
	LONG_FUNCTION:                 "function '{0}' is very long",
	MAGIC_NUMBER:                  "magic number '{0}'",
	NON_STRICT_EQUALITY:           "'==' compares after conversion, did you mean '==='?",
	IMPLICIT_NULL_RETURN:          "some paths of '{0}' return no value",
	SHADOWING_BUILTIN:             "declaration of '{0}' shadows a builtin function",
	VARIABLE_USED_BEFORE_ASSIGNMENT: "variable '{0}' is used before being assigned",
	POINTLESS_CONDITION:           "condition has no effect",
	EMPTY_FUNCTION_BODY:           "function '{0}' has an empty body",
	MUTATED_LOOP_VARIABLE:         "loop variable '{0}' is modified inside the loop body",
	STRING_INDEX_DEPRECATED:       "indexing a string is deprecated, use substring",
	OCTAL_LITERAL_STYLE:           "literal '{0}' looks like an octal number but is parsed as decimal",
	TRAILING_WHITESPACE_IN_STRING: "string literal ends with whitespace",
	SUSPICIOUS_SEMICOLON:          "this semicolon makes the body of the statement empty",
	ASSIGN_TO_PARAMETER:           "parameter '{0}' is reassigned",
	INCLUDE_SHADOWS_GLOBAL:        "included AI redeclares global '{0}'",
	GLOBAL_WRITE_IN_FUNCTION:      "global '{0}' is modified inside a function",
}

// Template returns the message template for the kind. An unknown kind gets
// a recognizable fallback rather than a panic, since diagnostics must never
// take the analyzer down.
func (k Kind) Template() string {
	if t, ok := templates[k]; ok {
		return t
	}
	return "unknown error"
}

var warningKinds = map[Kind]bool{
	DANGEROUS_CONVERSION: true, VARIABLE_NOT_INITIALIZED: true, UNUSED_VARIABLE: true,
	UNUSED_PARAMETER: true, UNREACHABLE_CODE: true, SHADOWING_VARIABLE: true,
	ASSIGNMENT_IN_CONDITION: true, EMPTY_BLOCK: true, DEPRECATED_FUNCTION: true,
	CONSTANT_CONDITION: true, IMPLICIT_GLOBAL_ACCESS: true, USELESS_EXPRESSION_STATEMENT: true,
	DIVISION_BY_ZERO: true, MODULO_BY_ZERO: true, COMPARISON_ALWAYS_TRUE: true,
	COMPARISON_ALWAYS_FALSE: true, REDUNDANT_CAST: true, EMPTY_INCLUDE: true,
	MISSING_SEMICOLON_STYLE: true, SELF_ASSIGNMENT: true, DUPLICATE_CASE: true,
	INFINITE_LOOP_SUSPECTED: true, NESTED_TERNARY: true, TOO_MANY_PARAMETERS: true,
	LONG_FUNCTION: true, MAGIC_NUMBER: true, NON_STRICT_EQUALITY: true,
	IMPLICIT_NULL_RETURN: true, SHADOWING_BUILTIN: true, VARIABLE_USED_BEFORE_ASSIGNMENT: true,
	POINTLESS_CONDITION: true, EMPTY_FUNCTION_BODY: true, MUTATED_LOOP_VARIABLE: true,
	STRING_INDEX_DEPRECATED: true, OCTAL_LITERAL_STYLE: true, TRAILING_WHITESPACE_IN_STRING: true,
	SUSPICIOUS_SEMICOLON: true, ASSIGN_TO_PARAMETER: true, INCLUDE_SHADOWS_GLOBAL: true,
	GLOBAL_WRITE_IN_FUNCTION: true,
}

func (k Kind) DefaultSeverity() Severity {
	if warningKinds[k] {
		return WARNING
	}
	return ERROR
}
