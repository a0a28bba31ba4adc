package launcher

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/shellargs"
)

// ErrNoSession is returned when building arguments without a session
var ErrNoSession = errors.New("can not build launch arguments without a session")

// jvmFlags follow the heap options of every launched game
var jvmFlags = []JVMOption{
	"-XX:+UseG1GC",
	"-XX:-UseAdaptiveSizePolicy",
	"-XX:-OmitStackTraceInFastThrow",
	"-Dfml.ignoreInvalidMinecraftCertificates=true",
	"-Dfml.ignorePatchDiscrepancies=true",
}

// windowsHeapDump is only passed on windows
const windowsHeapDump JVMOption = "-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"

var jvmTemplates = []string{
	"-Djava.library.path=${natives_directory}",
	"-Dminecraft.launcher.brand=${launcher_name}",
	"-Dminecraft.launcher.version=${launcher_version}",
	"-Dminecraft.client.jar=${primary_jar}",
	"-cp",
	"${classpath}",
}

// ArgumentMap returns all variables that can be used in argument templates of the given version
func (l *Launcher) ArgumentMap(desc *minecraft.Descriptor) (map[string]string, error) {
	if l.Session == nil {
		return nil, ErrNoSession
	}
	id := desc.ID

	assetsIndexName := ""
	index, ok, err := l.Versions.AssetIndex(id)
	if err != nil {
		return nil, err
	}
	if ok {
		assetsIndexName = index.ID
	}

	jarName, err := l.Versions.PrimaryJarName(id)
	if err != nil {
		return nil, err
	}

	classpath, err := l.Versions.ClasspathWithSeparator(id, l.LibrariesDir, l.Platform, l.cpSeparator())
	if err != nil {
		return nil, err
	}

	token := l.Session.GetAccessToken()
	uuid := l.Session.GetUUID()
	name := l.Session.GetPlayerName()
	userType := l.Session.GetUserType()
	if userType == "" {
		userType = "legacy"
	}

	return map[string]string{
		"auth_access_token": token,
		"auth_session":      fmt.Sprintf("token:%s:%s", token, uuid),
		"auth_player_name":  name,
		"auth_uuid":         uuid,
		"user_type":         userType,
		"user_properties":   "{}",
		"user_property_map": "{}",
		"profile_name":      name,
		// the minecraft version
		"version_name": id,
		// minecraft game dir that contains saves, worlds & mods
		"game_directory": l.GameDir,
		// asset dir contains some shared minecraft resources like sounds & some textures
		"assets_root":         l.AssetsDir,
		"assets_index_name":   assetsIndexName,
		"version_type":        desc.Type,
		"resolution_width":    strconv.Itoa(l.Width),
		"resolution_height":   strconv.Itoa(l.Height),
		"language":            l.Language,
		"launcher_name":       l.LauncherName,
		"launcher_version":    l.LauncherVersion,
		"natives_directory":   l.Versions.NativesDir(id, l.Platform),
		"primary_jar":         l.Versions.PrimaryJarPath(jarName),
		"classpath":           classpath,
		"classpath_separator": l.cpSeparator(),
	}, nil
}

// resolver looks up template variables in args. Unknown variables are logged.
func resolver(args map[string]string) shellargs.Resolver {
	return shellargs.ResolverFunc(func(name string) (string, bool) {
		value, ok := args[name]
		if !ok {
			log.Printf("[WARN] found unresolvable variable in launch args: ${%s}", name)
		}
		return value, ok
	})
}

// GameOptions returns the game options of version id. Versions without a legacy
// argument template (in the whole chain) have no game options at all.
// The window resolution is always appended last.
func (l *Launcher) GameOptions(id string, r shellargs.Resolver) ([]GameOption, error) {
	template, ok, err := l.Versions.LegacyArguments(id)
	if err != nil {
		return nil, err
	}
	options := make([]GameOption, 0)
	if !ok {
		return options, nil
	}

	strategy := shellargs.Map(r)
	tokens := shellargs.New(template, strategy)
	pending := ""
	for {
		arg, ok, err := tokens.Next()
		if err != nil {
			return nil, fmt.Errorf("invalid arguments of version %s: %w", id, err)
		}
		if !ok {
			break
		}

		isName := strings.HasPrefix(arg, "-")
		switch {
		case pending == "" && isName:
			pending = arg
		case pending == "":
			options = append(options, GameOption{Name: arg})
		case isName:
			options = append(options, GameOption{Name: pending})
			pending = arg
		default:
			options = append(options, GameOption{Name: pending, Value: arg, HasValue: true})
			pending = ""
		}
	}
	if pending != "" {
		options = append(options, GameOption{Name: pending})
	}

	width, err := shellargs.First("${resolution_width}", strategy)
	if err != nil {
		return nil, err
	}
	height, err := shellargs.First("${resolution_height}", strategy)
	if err != nil {
		return nil, err
	}
	options = append(options,
		GameOption{Name: "--width", Value: width, HasValue: true},
		GameOption{Name: "--height", Value: height, HasValue: true},
	)

	return options, nil
}

// JVMOptions returns the fixed jvm options followed by the templated ones
func (l *Launcher) JVMOptions(r shellargs.Resolver) ([]JVMOption, error) {
	options := make([]JVMOption, 0, 3+len(jvmFlags)+len(jvmTemplates))
	options = append(options, "-Xmn128m", JVMOption(fmt.Sprintf("-Xmx%dm", l.HeapMiB())))
	options = append(options, jvmFlags...)
	if l.Platform.OS == "windows" {
		options = append(options, windowsHeapDump)
	}

	strategy := shellargs.Map(r)
	for _, template := range jvmTemplates {
		option, err := shellargs.First(template, strategy)
		if err != nil {
			return nil, err
		}
		options = append(options, JVMOption(option))
	}
	return options, nil
}

// ToArguments resolves everything needed to launch version id
func (l *Launcher) ToArguments(id string) (*LaunchArguments, error) {
	desc, err := l.Versions.Load(id)
	if err != nil {
		return nil, err
	}

	mainClass, _, err := l.Versions.MainClass(id)
	if err != nil {
		return nil, err
	}
	if mainClass == "" {
		log.Println("[WARN] version " + id + " has no main class")
	}
	if desc.Type == "" {
		log.Println("[WARN] version " + id + " has no type")
	}

	collection, err := l.Versions.NativeCollection(id, l.LibrariesDir, l.Platform)
	if err != nil {
		return nil, err
	}

	args, err := l.ArgumentMap(desc)
	if err != nil {
		return nil, err
	}
	r := resolver(args)

	jvmOptions, err := l.JVMOptions(r)
	if err != nil {
		return nil, err
	}
	gameOptions, err := l.GameOptions(id, r)
	if err != nil {
		return nil, err
	}

	java := l.Java
	if java == "" {
		java = "java"
	}

	return &LaunchArguments{
		program:     java,
		mainClass:   mainClass,
		jvmOptions:  jvmOptions,
		gameOptions: gameOptions,
		gameDir:     l.GameDir,
		nativesDir:  args["natives_directory"],
		natives:     collection,
		extractor:   l.Extractor,
	}, nil
}
