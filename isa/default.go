package isa

// DefaultISA holds the aliases for the CIL branch, arithmetic, call and
// local/argument families. It is filled once at package init and never
// changed afterwards.
var DefaultISA = NewISA("CIL")

func init() {
	defaultISAinit()
}

func defaultISAinit() {
	DefaultISA.registerAlias("add", "Add", "Add_Ovf", "Add_Ovf_Un")
	DefaultISA.registerAlias("beq", "Beq_S", "Beq")
	DefaultISA.registerAlias("bge", "Bge_S", "Bge_Un_S", "Bge", "Bge_Un")
	DefaultISA.registerAlias("bgt", "Bgt_S", "Bgt_Un_S", "Bgt", "Bgt_Un")
	DefaultISA.registerAlias("ble", "Ble_S", "Ble_Un_S", "Ble", "Ble_Un")
	DefaultISA.registerAlias("blt", "Blt_S", "Blt_Un_S", "Blt", "Blt_Un")
	DefaultISA.registerAlias("bne", "Bne_Un_S", "Bne_Un")
	DefaultISA.registerAlias("br", "Br_S", "Br")
	DefaultISA.registerAlias("brfalse", "Brfalse_S", "Brfalse")
	DefaultISA.registerAlias("brtrue", "Brtrue_S", "Brtrue")
	DefaultISA.registerAlias("call", "Call", "Callvirt")
	DefaultISA.registerAlias("callvirt", "Callvirt", "Call")
	DefaultISA.registerAlias("cgt", "Cgt", "Cgt_Un")
	DefaultISA.registerAlias("clt", "Clt", "Clt_Un")
	DefaultISA.registerAlias("div", "Div", "Div_Un")
	DefaultISA.registerAlias("ldarg",
		"Ldarg_S", "Ldarg", "Ldarg_0", "Ldarg_1", "Ldarg_2", "Ldarg_3")
	DefaultISA.registerAlias("ldarga", "Ldarga_S", "Ldarga")
	DefaultISA.registerAlias("ldloc",
		"Ldloc_S", "Ldloc", "Ldloc_0", "Ldloc_1", "Ldloc_2", "Ldloc_3")
	DefaultISA.registerAlias("ldloca", "Ldloca_S", "Ldloca")
	DefaultISA.registerAlias("leave", "Leave", "Leave_S")
	DefaultISA.registerAlias("mul", "Mul", "Mul_Ovf", "Mul_Ovf_Un")
	DefaultISA.registerAlias("rem", "Rem", "Rem_Un")
	DefaultISA.registerAlias("shr", "Shr", "Shr_Un")
	DefaultISA.registerAlias("starg", "Starg_S", "Starg")
	DefaultISA.registerAlias("stloc",
		"Stloc_S", "Stloc", "Stloc_0", "Stloc_1", "Stloc_2", "Stloc_3")
	DefaultISA.registerAlias("sub", "Sub", "Sub_Ovf", "Sub_Ovf_Un")
}

// Resolve resolves mnemonic against DefaultISA.
func Resolve(mnemonic string) Resolution {
	return DefaultISA.Resolve(mnemonic)
}
