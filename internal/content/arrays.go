package content

// guide is the authored model, in display order. Headings double as anchor
// sources, so every title must keep at least one alphanumeric character and
// stay unique (see Validate).
var guide = []Topic{
	{
		Title: "Introduction to Arrays",
		Summary: "An array is C's simplest aggregate: a fixed-size, contiguous block of " +
			"elements that all share one type. Almost everything else about arrays in C " +
			"follows from those three words: fixed, contiguous, one type.",
		Subtopics: []Subtopic{
			{
				Title: "1.1 Definition and Characteristics",
				Summary: "What the language guarantees about every array, no matter how it " +
					"is declared or where it lives.",
				Notes: []string{
					"An array holds a fixed number of elements of a single type; the count is part of the type itself, so int[4] and int[5] are different types.",
					"Elements are stored contiguously, one after another, with no padding between them.",
					"The size is fixed at the point the array is created. Plain arrays never grow; growth requires allocating a new block.",
					"Array elements are indexed from 0 to length - 1. There is no index -1 and no index equal to the length.",
					"C performs no bounds checking at runtime. Reading or writing outside the declared range is undefined behavior, not an error you can catch.",
				},
			},
			{
				Title: "1.2 Declaration Syntax",
				Summary: "Declarations read inside-out: the element type, the name, and the " +
					"element count in square brackets.",
				Notes: []string{
					"The count in a declaration must be an integer constant expression for ordinary arrays (variable-length arrays are the exception, covered later).",
					"A declaration like int scores[10] defines storage immediately; there is no separate allocation step for automatic or static arrays.",
					"The declared length can be omitted when an initializer supplies it, as in int primes[] = {2, 3, 5}.",
				},
				Code: []CodeSample{
					{
						Caption: "Declaring arrays of different element types",
						Source: `int scores[10];          /* ten ints, uninitialized */
double samples[256];     /* 256 doubles */
char name[64];           /* 64 chars, enough for a short string */
int primes[] = {2, 3, 5, 7, 11};  /* length 5, inferred */`,
					},
				},
			},
			{
				Title: "1.3 Memory Layout",
				Summary: "Arrays are the reason pointer arithmetic works: element i lives " +
					"exactly i element-widths past the start.",
				Notes: []string{
					"For an array a, the address of a[i] is the address of a[0] plus i * sizeof(element).",
					"sizeof applied to an array yields the total byte count: element size times element count.",
					"Contiguity is what makes arrays cache-friendly and what allows byte-wise operations like memcpy to work on whole arrays.",
				},
				Code: []CodeSample{
					{
						Caption: "Inspecting layout with sizeof and addresses",
						Source: `int a[4] = {10, 20, 30, 40};

printf("total bytes: %zu\n", sizeof a);          /* 16 on a 4-byte-int platform */
printf("element bytes: %zu\n", sizeof a[0]);     /* 4 */
printf("count: %zu\n", sizeof a / sizeof a[0]);  /* 4 */

for (int i = 0; i < 4; i++)
    printf("a[%d] at %p\n", i, (void *)&a[i]);   /* addresses 4 bytes apart */`,
					},
				},
			},
		},
	},
	{
		Title: "Initialization",
		Summary: "What an array holds before you store anything into it depends entirely on " +
			"where it lives and how it is written. C gives several initializer forms, each " +
			"with precise filling rules.",
		Subtopics: []Subtopic{
			{
				Title: "2.1 Default Values",
				Summary: "Uninitialized does not mean zero. It means whatever bytes happened " +
					"to be there.",
				Notes: []string{
					"Automatic (local, non-static) arrays without an initializer hold indeterminate values. Reading them before writing is undefined behavior.",
					"Static and file-scope arrays without an initializer are zero-initialized before main runs.",
					"A partial initializer zero-fills the rest: int a[8] = {1} sets a[0] to 1 and a[1] through a[7] to 0.",
					"The common idiom for an all-zero local array is = {0}, which zero-fills every element.",
				},
				Code: []CodeSample{
					{
						Caption: "Zero-filling rules",
						Source: `int counts[8] = {0};      /* all eight elements are 0 */
int partial[8] = {1, 2};  /* 1, 2, then six zeros */

static int table[100];    /* static storage: already all zeros */

int junk[8];              /* automatic, no initializer: indeterminate */`,
					},
				},
			},
			{
				Title: "2.2 Initializer Lists",
				Summary: "The braced list assigns elements in order and fixes the inferred " +
					"length when the declaration omits it.",
				Notes: []string{
					"Initializers apply left to right: the first expression goes to element 0, the second to element 1, and so on.",
					"Supplying more initializers than the declared length is a constraint violation the compiler must diagnose.",
					"With the length omitted, the array is exactly as long as the list: int fib[] = {0, 1, 1, 2, 3} has length 5.",
					"Initializer expressions for arrays with static storage duration must be constant expressions.",
				},
				Code: []CodeSample{
					{
						Caption: "Braced initializer lists",
						Source: `int fib[] = {0, 1, 1, 2, 3, 5, 8};
double weights[3] = {0.2, 0.3, 0.5};

/* error: too many initializers for ints[2] */
/* int ints[2] = {1, 2, 3}; */`,
					},
				},
			},
			{
				Title: "2.3 Designated Initializers",
				Summary: "Since C99, initializers can name the index they fill, in any " +
					"order, with unnamed gaps zero-filled.",
				Code: []CodeSample{
					{
						Caption: "Filling selected indexes by name",
						Source: `/* sparse lookup table: everything not named is 0 */
int days_in_month[13] = {
    [1] = 31, [2] = 28, [3] = 31, [4] = 30,
    [5] = 31, [6] = 30, [7] = 31, [8] = 31,
    [9] = 30, [10] = 31, [11] = 30, [12] = 31,
};

/* designators may skip around; the largest index fixes the length */
char vowels[] = { [4] = 'u', [0] = 'a', [1] = 'e', [2] = 'i', [3] = 'o' };`,
					},
				},
			},
			{
				Title: "2.4 Variable-Length Arrays",
				Summary: "A C99 feature that sizes an automatic array from a runtime value. " +
					"Powerful, but easy to misuse.",
				Notes: []string{
					"A VLA's length is evaluated once, when the declaration is reached; the array keeps that length for its lifetime.",
					"VLAs cannot have static storage duration and cannot be initialized with a braced list.",
					"sizeof on a VLA is computed at runtime, unlike every other use of sizeof.",
					"Large or attacker-controlled lengths can overflow the stack, which is why many style guides ban VLAs outright; C11 made them optional.",
				},
				Code: []CodeSample{
					{
						Caption: "A runtime-sized scratch buffer",
						Source: `void process(int n) {
    int window[n];          /* length decided when execution gets here */
    for (int i = 0; i < n; i++)
        window[i] = i * i;
    /* sizeof window == n * sizeof(int), computed at runtime */
}`,
					},
				},
			},
		},
	},
	{
		Title: "Indexing and Iteration",
		Summary: "Subscripting is the everyday face of arrays. It is also where most array " +
			"bugs live, because the language trusts every index you write.",
		Subtopics: []Subtopic{
			{
				Title: "3.1 The Subscript Operator",
				Summary: "a[i] is defined as *(a + i), which has a few surprising " +
					"consequences.",
				Notes: []string{
					"The subscript operator is plain pointer arithmetic plus a dereference; a[i] and *(a + i) are the same expression by definition.",
					"Because addition commutes, i[a] is legal and means the same thing as a[i]. Never write it, but expect it in quizzes.",
					"Subscripts may be any integer expression, including negative ones when applied to a pointer into the middle of an array.",
				},
				Code: []CodeSample{
					{
						Caption: "Subscripts are pointer arithmetic",
						Source: `int a[5] = {10, 20, 30, 40, 50};
int *mid = &a[2];

printf("%d\n", a[3]);      /* 40 */
printf("%d\n", *(a + 3));  /* 40, identical expression */
printf("%d\n", mid[-1]);   /* 20: legal, points back inside the array */`,
					},
				},
			},
			{
				Title: "3.2 Bounds and Undefined Behavior",
				Summary: "The compiler will not stop an out-of-range access, and the " +
					"program that results is allowed to do anything at all.",
				Notes: []string{
					"Valid indexes run from 0 through length - 1. Forming a pointer one past the last element is allowed; dereferencing it is not.",
					"An out-of-bounds write can corrupt neighboring variables, saved registers, or the return address. Symptoms often appear far from the bug.",
					"Out-of-bounds reads are equally undefined even when they appear to work on your machine today.",
					"Sanitizers (-fsanitize=address) and careful loop conditions are the practical defenses; the language itself offers none.",
				},
			},
			{
				Title: "3.3 Iteration Patterns",
				Summary: "The canonical loops over an array, and the off-by-one shapes to " +
					"avoid.",
				Notes: []string{
					"The canonical forward loop is for (size_t i = 0; i < n; i++). Using < with the element count cannot overrun.",
					"Prefer size_t for indexes derived from sizeof; mixing signed and unsigned comparisons invites warnings and subtle wraparound.",
					"A reverse loop with an unsigned index must not test i >= 0, which is always true; count down with i-- after testing i > 0, or use a signed index.",
				},
				Code: []CodeSample{
					{
						Caption: "Forward and reverse loops that stay in bounds",
						Source: `double v[6] = {1, 2, 3, 4, 5, 6};
size_t n = sizeof v / sizeof v[0];

double sum = 0;
for (size_t i = 0; i < n; i++)
    sum += v[i];

/* reverse: decrement inside the body test, never i >= 0 on unsigned */
for (size_t i = n; i-- > 0; )
    printf("%g ", v[i]);`,
					},
				},
			},
		},
	},
	{
		Title: "Arrays and Pointers",
		Summary: "Arrays are not pointers, but in most expressions an array quietly becomes " +
			"one. Understanding exactly when that conversion happens untangles half of C.",
		Subtopics: []Subtopic{
			{
				Title: "4.1 Array Decay",
				Summary: "In most contexts an array expression converts to a pointer to its " +
					"first element. The exceptions are short and worth memorizing.",
				Notes: []string{
					"Used in an expression, an array of T decays to a T * pointing at element 0.",
					"Decay does not happen for the operand of sizeof, the operand of unary &, or a string literal used to initialize a char array.",
					"&a is a pointer to the whole array (type T (*)[N]), not a pointer to its first element; it has the same address but different arithmetic.",
					"Decay is why array arguments in function calls collapse to pointers, and why functions can never receive an array's length implicitly.",
				},
				Code: []CodeSample{
					{
						Caption: "Where decay happens and where it does not",
						Source: `int a[8];

int *p = a;            /* decay: p points at a[0] */
size_t n = sizeof a;   /* no decay: 32, the whole array */
int (*whole)[8] = &a;  /* no decay: pointer to array of 8 ints */

printf("%p %p\n", (void *)a, (void *)&a);  /* same address... */
/* ...but whole + 1 advances 32 bytes, p + 1 advances 4 */`,
					},
				},
			},
			{
				Title: "4.2 Pointer Arithmetic",
				Summary: "Adding to a pointer moves it by whole elements, and subtraction " +
					"between pointers counts elements, not bytes.",
				Notes: []string{
					"p + k points k elements past p; the byte offset is k * sizeof(*p).",
					"Subtracting two pointers into the same array yields the element distance as a ptrdiff_t.",
					"Pointer arithmetic is defined only within an array object, up to and including the one-past-the-end position.",
					"Comparing pointers with < and > is likewise defined only when both point into the same array.",
				},
				Code: []CodeSample{
					{
						Caption: "Walking an array with a pointer",
						Source: `int a[5] = {1, 2, 3, 4, 5};
int *end = a + 5;          /* one past the end: valid to form, not to read */

for (int *p = a; p < end; p++)
    printf("%d ", *p);

printf("\ncount: %td\n", end - a);  /* 5 */`,
					},
				},
			},
			{
				Title: "4.3 Where Arrays and Pointers Differ",
				Summary: "The two behave identically inside an index expression and " +
					"completely differently everywhere else.",
				Notes: []string{
					"sizeof: for an array it is the whole object; for a pointer it is the pointer's own size, regardless of what it points to.",
					"Assignment: a pointer can be reseated; an array name is not a modifiable lvalue, so a = b does not compile for arrays.",
					"Definition vs declaration must agree: defining char buf[64] in one file and declaring extern char *buf in another is undefined, not a style choice.",
					"String literals: char *s = \"hi\" points at read-only storage, while char s[] = \"hi\" copies the characters into a writable array.",
				},
			},
		},
	},
	{
		Title: "Multidimensional Arrays",
		Summary: "C builds matrices as arrays of arrays. There is no new mechanism, just the " +
			"same contiguity rule applied twice, which fixes how the elements sit in memory.",
		Subtopics: []Subtopic{
			{
				Title: "5.1 Declaring and Initializing Matrices",
				Summary: "A two-dimensional array is an array whose elements are arrays; " +
					"the initializer nests the same way.",
				Notes: []string{
					"int m[3][4] declares three elements, each an int[4]: three rows of four columns.",
					"Nested braces mirror the structure; inner braces may be omitted but nesting them keeps rows visually honest.",
					"Only the leftmost dimension may be omitted, and only when an initializer or parameter context supplies it: int m[][4] = {...}.",
				},
				Code: []CodeSample{
					{
						Caption: "A 3-by-4 matrix",
						Source: `int m[3][4] = {
    { 1,  2,  3,  4},
    { 5,  6,  7,  8},
    { 9, 10, 11, 12},
};

/* leftmost dimension inferred: still three rows */
int same[][4] = {
    { 1,  2,  3,  4},
    { 5,  6,  7,  8},
    { 9, 10, 11, 12},
};`,
					},
				},
			},
			{
				Title: "5.2 Row-Major Order",
				Summary: "Rows are stored whole, one after another, so the rightmost index " +
					"varies fastest in memory.",
				Notes: []string{
					"m[i][j] lives at offset (i * COLS + j) * sizeof(element) from the start of the matrix.",
					"Looping rows outer and columns inner touches memory sequentially; swapping the loops strides by a full row per step and can be dramatically slower on large matrices.",
					"Because storage is contiguous, a whole matrix can be zeroed with a single memset covering sizeof m bytes.",
				},
				Code: []CodeSample{
					{
						Caption: "Cache-friendly traversal order",
						Source: `long sum = 0;

/* sequential: j varies fastest, matching memory order */
for (int i = 0; i < ROWS; i++)
    for (int j = 0; j < COLS; j++)
        sum += m[i][j];

memset(m, 0, sizeof m);  /* one contiguous block */`,
					},
				},
			},
			{
				Title: "5.3 Arrays of Pointers",
				Summary: "A pointer table looks like a matrix when indexed, but the memory " +
					"shape and the trade-offs are different.",
				Notes: []string{
					"int *rows[3] is three pointers, each free to point at rows of different lengths allocated anywhere; int m[3][4] is one solid block.",
					"rows[i][j] costs an extra memory load to fetch the row pointer before indexing into it.",
					"Pointer tables allow ragged shapes and row swapping by pointer exchange; true 2-D arrays give contiguity and a single free.",
					"The two are not interchangeable across function boundaries: a function expecting int (*)[4] cannot take an int ** and vice versa.",
				},
				Code: []CodeSample{
					{
						Caption: "Ragged rows via a pointer table",
						Source: `int r0[] = {1};
int r1[] = {1, 2, 3};
int r2[] = {1, 2};
int *rows[] = {r0, r1, r2};   /* three rows, three lengths */

printf("%d\n", rows[1][2]);   /* 3 */`,
					},
				},
			},
		},
	},
	{
		Title: "Arrays and Functions",
		Summary: "An array never really enters a function. What arrives is a pointer to its " +
			"first element, and everything about array parameters follows from that.",
		Subtopics: []Subtopic{
			{
				Title: "6.1 Passing Arrays to Functions",
				Summary: "Array parameters are rewritten as pointers, so the length must " +
					"travel separately.",
				Notes: []string{
					"A parameter declared int a[] or int a[10] is adjusted to int *a; the 10 is ignored by the compiler.",
					"Always pass the element count alongside the array; the callee has no other way to know it.",
					"For matrices, all dimensions except the first must appear in the parameter type, because the compiler needs them for index arithmetic: void f(int m[][4], int rows).",
					"Writing the pointer form explicitly (int *a) is equally correct and arguably more honest.",
				},
				Code: []CodeSample{
					{
						Caption: "Length travels as its own parameter",
						Source: `double mean(const double *v, size_t n) {
    double sum = 0;
    for (size_t i = 0; i < n; i++)
        sum += v[i];
    return n ? sum / (double)n : 0.0;
}

double data[] = {1.0, 2.0, 3.0, 4.0};
double m = mean(data, sizeof data / sizeof data[0]);`,
					},
				},
			},
			{
				Title: "6.2 The sizeof Pitfall",
				Summary: "Inside the callee, sizeof measures the pointer, not the caller's " +
					"array. This single fact produces a famous class of bugs.",
				Notes: []string{
					"sizeof a inside void f(int a[100]) is sizeof(int *), typically 8, never 400.",
					"The element-count idiom sizeof a / sizeof a[0] therefore only works in the scope where the array was declared.",
					"Compilers warn about sizeof on array parameters precisely because the result is almost never what was intended.",
				},
				Code: []CodeSample{
					{
						Caption: "The measurement that silently changes meaning",
						Source: `void f(int a[100]) {
    /* sizeof a == sizeof(int *): 8 on a 64-bit platform, not 400 */
    printf("%zu\n", sizeof a);
}

int big[100];
printf("%zu\n", sizeof big);   /* 400: measured where the array is visible */
f(big);`,
					},
				},
			},
			{
				Title: "6.3 Returning Array Data",
				Summary: "Functions cannot return arrays by value, so every design returns " +
					"a pointer with a clearly owned lifetime.",
				Notes: []string{
					"Returning the address of a local array is undefined: the storage dies when the function returns.",
					"The three workable patterns: write into a caller-supplied buffer, return malloc'd storage the caller must free, or return a pointer to static storage (not reentrant).",
					"Caller-supplied buffers are the most flexible pattern and the one the standard library leans on (snprintf, fgets, strftime).",
				},
				Code: []CodeSample{
					{
						Caption: "Caller-supplied buffer, the standard-library pattern",
						Source: `/* wrong: local storage vanishes at return */
int *broken(void) {
    int tmp[4] = {1, 2, 3, 4};
    return tmp;            /* dangling as soon as it is returned */
}

/* right: the caller owns the storage and its lifetime */
void squares(int *out, size_t n) {
    for (size_t i = 0; i < n; i++)
        out[i] = (int)(i * i);
}`,
					},
				},
			},
		},
	},
	{
		Title: "Strings as Character Arrays",
		Summary: "C has no string type. It has char arrays plus a convention: the string is " +
			"everything up to the first zero byte. The convention is cheap, sharp-edged, and " +
			"everywhere.",
		Subtopics: []Subtopic{
			{
				Title: "7.1 Null Termination",
				Summary: "Every string function trusts the terminating zero byte; storage " +
					"must account for it.",
				Notes: []string{
					"A string of n characters needs an array of at least n + 1 chars; the extra slot holds '\\0'.",
					"strlen counts characters before the terminator and never includes it.",
					"An array of chars without a terminator is not a string; passing it to string functions reads past the end.",
					"char s[5] = \"hello\" is legal C and silently drops the terminator; the result is a char array, not a string.",
				},
				Code: []CodeSample{
					{
						Caption: "The terminator occupies real space",
						Source: `char greeting[] = "hi";     /* length 3: 'h', 'i', '\0' */
printf("%zu\n", sizeof greeting);   /* 3 */
printf("%zu\n", strlen(greeting));  /* 2 */

char exact[5] = "hello";    /* fits, but no room for '\0': not a string */`,
					},
				},
			},
			{
				Title: "7.2 String Literals and Mutability",
				Summary: "The same quoted text creates writable or read-only storage " +
					"depending on what it initializes.",
				Notes: []string{
					"char buf[] = \"text\" copies the characters into a writable array you own.",
					"char *p = \"text\" points at the literal itself; modifying it is undefined behavior and typically crashes.",
					"Declare pointers to literals as const char * so the compiler enforces the read-only contract.",
				},
				Code: []CodeSample{
					{
						Caption: "Array copy versus pointer to the literal",
						Source: `char buf[] = "cat";
buf[0] = 'b';               /* fine: buf is your writable copy */

const char *lit = "cat";
/* lit[0] = 'b'; */         /* undefined: the literal is read-only */`,
					},
				},
			},
			{
				Title: "7.3 Common Mistakes",
				Summary: "The recurring string bugs are all bookkeeping failures around " +
					"length and termination.",
				Notes: []string{
					"strcpy into a buffer smaller than the source overruns it; prefer snprintf or strncpy with an explicit terminator.",
					"strncpy does not terminate the destination when the source fills it completely; set dst[n-1] = '\\0' yourself.",
					"Comparing strings with == compares addresses, not contents; use strcmp.",
					"Forgetting that sizeof counts the terminator while strlen does not leads to off-by-one allocations in both directions.",
				},
				Code: []CodeSample{
					{
						Caption: "Bounded copy with guaranteed termination",
						Source: `char dst[8];

/* snprintf always terminates when the size is nonzero */
snprintf(dst, sizeof dst, "%s", src);

/* strncpy needs a manual terminator on truncation */
strncpy(dst, src, sizeof dst - 1);
dst[sizeof dst - 1] = '\0';`,
					},
				},
			},
		},
	},
	{
		Title: "Idioms and Pitfalls",
		Summary: "A short field guide: the handful of array idioms worth memorizing and the " +
			"recurring mistakes they guard against.",
		Subtopics: []Subtopic{
			{
				Title: "8.1 Computing Element Counts",
				Summary: "The one reliable way to count elements, and the one scope where " +
					"it works.",
				Notes: []string{
					"sizeof a / sizeof a[0] yields the element count of a true array, checked at compile time.",
					"Many codebases wrap it as a macro: #define COUNT_OF(a) (sizeof(a) / sizeof((a)[0])).",
					"The idiom silently returns garbage when a is a pointer, which is exactly what an array parameter is; apply it only where the array itself is in scope.",
				},
				Code: []CodeSample{
					{
						Caption: "A count macro and its limits",
						Source: `#define COUNT_OF(a) (sizeof(a) / sizeof((a)[0]))

int codes[] = {200, 301, 404, 500};
for (size_t i = 0; i < COUNT_OF(codes); i++)
    printf("%d\n", codes[i]);`,
					},
				},
			},
			{
				Title: "8.2 Off-by-One Errors",
				Summary: "Fencepost mistakes cluster around loop bounds, buffer sizes, and " +
					"the string terminator.",
				Notes: []string{
					"Looping with <= n instead of < n touches one element past the end.",
					"Allocating strlen(s) bytes for a copy of s forgets the terminator; the correct count is strlen(s) + 1.",
					"The valid one-past-the-end pointer is for comparison and arithmetic only; any dereference of it is out of bounds.",
					"When a bound is computed, assert it or clamp it near the loop rather than trusting arithmetic done far away.",
				},
			},
			{
				Title: "8.3 Copying and Filling",
				Summary: "Arrays do not assign, but contiguity makes whole-array byte " +
					"operations cheap and safe when sizes are kept honest.",
				Notes: []string{
					"Arrays cannot be assigned with =; copy with memcpy(dst, src, sizeof dst) when the types and sizes match.",
					"memset fills bytes, not elements: memset(a, 1, sizeof a) sets every byte to 1, making each int 0x01010101, not 1.",
					"memset to 0 and memset to 0xFF are the only portable whole-array fills for integer types; anything else needs a loop.",
					"Overlapping copies need memmove; memcpy with overlap is undefined.",
				},
				Code: []CodeSample{
					{
						Caption: "Whole-array copy and the memset value trap",
						Source: `int src[16], dst[16];

memcpy(dst, src, sizeof dst);   /* whole-array copy */

memset(dst, 0, sizeof dst);     /* every element 0 */
memset(dst, 1, sizeof dst);     /* every BYTE 1: elements become 16843009 */

for (size_t i = 0; i < 16; i++) /* per-element fill needs a loop */
    dst[i] = 1;`,
					},
				},
			},
		},
	},
}
