package vo

// Language tags a code block. Several wire forms contain spaces or symbols.
type Language string

const (
	LanguageABAP          Language = "abap"
	LanguageAgda          Language = "agda"
	LanguageArduino       Language = "arduino"
	LanguageAssembly      Language = "assembly"
	LanguageBash          Language = "bash"
	LanguageBasic         Language = "basic"
	LanguageBNF           Language = "bnf"
	LanguageC             Language = "c"
	LanguageCSharp        Language = "c#"
	LanguageCPlusPlus     Language = "c++"
	LanguageClojure       Language = "clojure"
	LanguageCoffeeScript  Language = "coffeescript"
	LanguageCoq           Language = "coq"
	LanguageCSS           Language = "css"
	LanguageDart          Language = "dart"
	LanguageDhall         Language = "dhall"
	LanguageDiff          Language = "diff"
	LanguageDocker        Language = "docker"
	LanguageEBNF          Language = "ebnf"
	LanguageElixir        Language = "elixir"
	LanguageElm           Language = "elm"
	LanguageErlang        Language = "erlang"
	LanguageFSharp        Language = "f#"
	LanguageFlow          Language = "flow"
	LanguageFortran       Language = "fortran"
	LanguageGherkin       Language = "gherkin"
	LanguageGLSL          Language = "glsl"
	LanguageGo            Language = "go"
	LanguageGraphQL       Language = "graphql"
	LanguageGroovy        Language = "groovy"
	LanguageHaskell       Language = "haskell"
	LanguageHCL           Language = "hcl"
	LanguageHTML          Language = "html"
	LanguageIdris         Language = "idris"
	LanguageJava          Language = "java"
	LanguageJavaScript    Language = "javascript"
	LanguageJSON          Language = "json"
	LanguageJulia         Language = "julia"
	LanguageKotlin        Language = "kotlin"
	LanguageLaTeX         Language = "latex"
	LanguageLess          Language = "less"
	LanguageLisp          Language = "lisp"
	LanguageLiveScript    Language = "livescript"
	LanguageLLVMIR        Language = "llvm ir"
	LanguageLua           Language = "lua"
	LanguageMakefile      Language = "makefile"
	LanguageMarkdown      Language = "markdown"
	LanguageMarkup        Language = "markup"
	LanguageMATLAB        Language = "matlab"
	LanguageMathematica   Language = "mathematica"
	LanguageMermaid       Language = "mermaid"
	LanguageNix           Language = "nix"
	LanguageNotionFormula Language = "notion formula"
	LanguageObjectiveC    Language = "objective-c"
	LanguageOCaml         Language = "ocaml"
	LanguagePascal        Language = "pascal"
	LanguagePerl          Language = "perl"
	LanguagePHP           Language = "php"
	LanguagePlainText     Language = "plain text"
	LanguagePowerShell    Language = "powershell"
	LanguageProlog        Language = "prolog"
	LanguageProtobuf      Language = "protobuf"
	LanguagePureScript    Language = "purescript"
	LanguagePython        Language = "python"
	LanguageR             Language = "r"
	LanguageRacket        Language = "racket"
	LanguageReason        Language = "reason"
	LanguageRuby          Language = "ruby"
	LanguageRust          Language = "rust"
	LanguageSass          Language = "sass"
	LanguageScala         Language = "scala"
	LanguageScheme        Language = "scheme"
	LanguageSCSS          Language = "scss"
	LanguageShell         Language = "shell"
	LanguageSmalltalk     Language = "smalltalk"
	LanguageSolidity      Language = "solidity"
	LanguageSQL           Language = "sql"
	LanguageSwift         Language = "swift"
	LanguageTOML          Language = "toml"
	LanguageTypeScript    Language = "typescript"
	LanguageVBNet         Language = "vb.net"
	LanguageVerilog       Language = "verilog"
	LanguageVHDL          Language = "vhdl"
	LanguageVisualBasic   Language = "visual basic"
	LanguageWebAssembly   Language = "webassembly"
	LanguageXML           Language = "xml"
	LanguageYAML          Language = "yaml"
	LanguageJavaCFamily   Language = "java/c/c++/c#"
)

var languages = newEnumSet(
	LanguageABAP, LanguageAgda, LanguageArduino, LanguageAssembly, LanguageBash, LanguageBasic,
	LanguageBNF, LanguageC, LanguageCSharp, LanguageCPlusPlus, LanguageClojure, LanguageCoffeeScript,
	LanguageCoq, LanguageCSS, LanguageDart, LanguageDhall, LanguageDiff, LanguageDocker, LanguageEBNF,
	LanguageElixir, LanguageElm, LanguageErlang, LanguageFSharp, LanguageFlow, LanguageFortran,
	LanguageGherkin, LanguageGLSL, LanguageGo, LanguageGraphQL, LanguageGroovy, LanguageHaskell,
	LanguageHCL, LanguageHTML, LanguageIdris, LanguageJava, LanguageJavaScript, LanguageJSON,
	LanguageJulia, LanguageKotlin, LanguageLaTeX, LanguageLess, LanguageLisp, LanguageLiveScript,
	LanguageLLVMIR, LanguageLua, LanguageMakefile, LanguageMarkdown, LanguageMarkup, LanguageMATLAB,
	LanguageMathematica, LanguageMermaid, LanguageNix, LanguageNotionFormula, LanguageObjectiveC,
	LanguageOCaml, LanguagePascal, LanguagePerl, LanguagePHP, LanguagePlainText, LanguagePowerShell,
	LanguageProlog, LanguageProtobuf, LanguagePureScript, LanguagePython, LanguageR, LanguageRacket,
	LanguageReason, LanguageRuby, LanguageRust, LanguageSass, LanguageScala, LanguageScheme,
	LanguageSCSS, LanguageShell, LanguageSmalltalk, LanguageSolidity, LanguageSQL, LanguageSwift,
	LanguageTOML, LanguageTypeScript, LanguageVBNet, LanguageVerilog, LanguageVHDL,
	LanguageVisualBasic, LanguageWebAssembly, LanguageXML, LanguageYAML, LanguageJavaCFamily,
)

func (l *Language) UnmarshalJSON(data []byte) (err error) {
	*l, err = decodeEnum(data, languages, "language")
	return err
}

// Fence returns the info string used for fenced markdown code blocks.
func (l Language) Fence() string {
	switch l {
	case LanguagePlainText, "":
		return ""
	case LanguageCSharp:
		return "csharp"
	case LanguageCPlusPlus:
		return "cpp"
	case LanguageFSharp:
		return "fsharp"
	case LanguageLLVMIR:
		return "llvm"
	case LanguageVBNet:
		return "vbnet"
	case LanguageVisualBasic:
		return "vb"
	case LanguageJavaCFamily:
		return "java"
	case LanguageNotionFormula:
		return ""
	default:
		return string(l)
	}
}
